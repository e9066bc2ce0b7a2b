// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/go-donew/mentoring-api/internal/config"
	"github.com/go-donew/mentoring-api/internal/database"
	"github.com/go-donew/mentoring-api/internal/logging"
	"github.com/go-donew/mentoring-api/internal/models"
)

// Identity is the account service: sign-up, sign-in and token
// refresh. It owns credentials and mirrors each account into the
// user store so the rest of the API can treat users as plain
// documents.
type Identity struct {
	tokens      *TokenManager
	credentials *CredentialStore
	users       *database.UserStore
	policy      PasswordPolicy
	limiter     *RateLimiter
	audit       *logging.SecurityLogger
	rootUsers   map[string]bool
}

// NewIdentity builds the identity service.
func NewIdentity(cfg *config.AuthConfig, tokens *TokenManager, credentials *CredentialStore, users *database.UserStore) *Identity {
	rootUsers := make(map[string]bool, len(cfg.RootUsers))
	for _, email := range cfg.RootUsers {
		rootUsers[NormalizeEmail(email)] = true
	}

	return &Identity{
		tokens:      tokens,
		credentials: credentials,
		users:       users,
		policy:      DefaultPasswordPolicy(),
		limiter:     NewRateLimiter(cfg.SignInRatePerSecond, cfg.SignInBurst),
		audit:       logging.NewSecurityLogger(),
		rootUsers:   rootUsers,
	}
}

// SignUpInput are the fields accepted on account creation.
type SignUpInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// SignUp creates an account and returns the mirrored user with a
// fresh token pair. The super-admin flag is granted when the email is
// listed in the root user configuration.
func (i *Identity) SignUp(ctx context.Context, in SignUpInput) (*models.User, *TokenPair, error) {
	if err := i.policy.Validate(in.Password); err != nil {
		return nil, nil, models.NewServerError(models.ErrImproperPayload).WithMessage(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, models.NewServerError(models.ErrBackendError)
	}

	email := NormalizeEmail(in.Email)
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		LastSignedIn: time.Now(),
	}

	cred := &Credential{
		UserID:       user.ID,
		Email:        email,
		PasswordHash: hash,
	}
	claims := &UserClaims{Root: i.rootUsers[email]}

	if err := i.credentials.Create(ctx, cred, claims); err != nil {
		if errors.Is(err, ErrCredentialExists) {
			return nil, nil, models.NewServerError(models.ErrEntityAlreadyExists).
				WithMessage("An account with that email address already exists.")
		}
		return nil, nil, models.NewServerError(models.ErrBackendError)
	}

	if err := i.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := i.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, models.NewServerError(models.ErrBackendError)
	}

	i.audit.LogSignUp(user.ID, email, clientKeyFromContext(ctx))
	return user, pair, nil
}

// SignInInput are the credentials accepted on sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// SignIn checks credentials and returns the user with a fresh token
// pair. Credential checks are throttled per client. An unknown email
// reports entity-not-found; a wrong password for a known account
// reports incorrect-credentials.
func (i *Identity) SignIn(ctx context.Context, in SignInInput) (*models.User, *TokenPair, error) {
	clientKey := clientKeyFromContext(ctx)
	if !i.limiter.Allow(clientKey) {
		return nil, nil, models.NewServerError(models.ErrTooManyRequests)
	}

	email := NormalizeEmail(in.Email)
	cred, err := i.credentials.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrCredentialNotFound) {
			i.audit.LogSignInFailure(email, clientKey, "unknown account")
			return nil, nil, models.NewServerError(models.ErrEntityNotFound).
				WithMessage("An account with that email address does not exist.")
		}
		return nil, nil, models.NewServerError(models.ErrBackendError)
	}

	if err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(in.Password)); err != nil {
		i.audit.LogSignInFailure(email, clientKey, "password mismatch")
		return nil, nil, models.NewServerError(models.ErrIncorrectCredentials)
	}

	user, err := i.users.Update(ctx, cred.UserID, func(u *models.User) error {
		u.LastSignedIn = time.Now()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	pair, err := i.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, models.NewServerError(models.ErrBackendError)
	}

	i.audit.LogSignInSuccess(user.ID, email, clientKey)
	return user, pair, nil
}

// RefreshTokens exchanges a refresh token for a new token pair.
func (i *Identity) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := i.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		i.audit.LogTokenRefresh("", false, err.Error())
		return nil, err
	}

	pair, err := i.tokens.Issue(userID)
	if err != nil {
		return nil, models.NewServerError(models.ErrBackendError)
	}

	i.audit.LogTokenRefresh(userID, true, "")
	return pair, nil
}

// VerifyToken resolves a bearer token to its user and claims.
func (i *Identity) VerifyToken(ctx context.Context, bearerToken string) (*models.User, *UserClaims, error) {
	userID, err := i.tokens.VerifyBearer(bearerToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := i.users.Get(ctx, userID)
	if err != nil {
		// The token outlived the account.
		return nil, nil, models.NewServerError(models.ErrInvalidToken)
	}

	claims, err := i.credentials.GetClaims(ctx, userID)
	if err != nil {
		return nil, nil, models.NewServerError(models.ErrBackendError)
	}

	return user, claims, nil
}
