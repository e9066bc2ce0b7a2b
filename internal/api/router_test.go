// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/go-donew/mentoring-api/internal/auth"
	"github.com/go-donew/mentoring-api/internal/authz"
	"github.com/go-donew/mentoring-api/internal/config"
	"github.com/go-donew/mentoring-api/internal/database"
)

const rootEmail = "root@example.com"

// testAPI is the fully wired HTTP surface over an in-memory store.
type testAPI struct {
	handler http.Handler
	store   *database.Store
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store, err := database.Open(database.Config{InMemory: true})
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:        "127.0.0.1",
			Port:        8080,
			Environment: "development",
		},
		Auth: config.AuthConfig{
			JWTSecret:           "0123456789abcdef0123456789abcdef",
			Issuer:              "mentoring-api-test",
			BearerTokenTTL:      time.Hour,
			RefreshTokenTTL:     24 * time.Hour,
			RootUsers:           []string{rootEmail},
			SignInRatePerSecond: 100,
			SignInBurst:         100,
		},
		Security: config.SecurityConfig{
			CORSOrigins: []string{"*"},
			RateLimit:   config.RateLimitConfig{Disabled: true},
		},
	}

	tokens, err := auth.NewTokenManager(&cfg.Auth)
	if err != nil {
		t.Fatalf("building token manager: %v", err)
	}
	identity := auth.NewIdentity(&cfg.Auth, tokens, auth.NewCredentialStore(store.DB()), store.Users)
	engine := authz.NewEngine(store.Groups)

	router := NewRouter(cfg, NewHandler(store, identity, engine), auth.NewMiddleware(identity), authz.NewMiddleware(engine))

	return &testAPI{
		handler: router.Setup(),
		store:   store,
	}
}

// do performs one request against the in-process handler.
func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a response body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}

// signedUpUser is what the harness keeps from a sign-up response.
type signedUpUser struct {
	ID     string
	Email  string
	Bearer string
}

// signUpUser registers an account through the API and returns its id
// and bearer token.
func (a *testAPI) signUpUser(t *testing.T, name, email string) signedUpUser {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "a sensible passphrase",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("sign-up for %s returned %d: %s", email, rec.Code, rec.Body.String())
	}

	var body struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Tokens struct {
			Bearer string `json:"bearer"`
		} `json:"tokens"`
	}
	decodeBody(t, rec, &body)

	return signedUpUser{ID: body.User.ID, Email: body.User.Email, Bearer: body.Tokens.Bearer}
}

// assertEnvelope checks an error response's status and code.
func assertEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}

	var body struct {
		Error struct {
			Code   string `json:"code"`
			Status int    `json:"status"`
		} `json:"error"`
	}
	decodeBody(t, rec, &body)

	if body.Error.Code != code {
		t.Errorf("error code = %q, want %q", body.Error.Code, code)
	}
	if body.Error.Status != status {
		t.Errorf("envelope status = %d, want %d", body.Error.Status, status)
	}
}

func TestPingIsPublic(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/ping", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "pong" {
		t.Errorf("body = %q, want pong", rec.Body.String())
	}
}

func TestPongRequiresAuthentication(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/pong", "", nil)
	assertEnvelope(t, rec, http.StatusUnauthorized, "invalid-token")

	user := a.signUpUser(t, "Alice", "alice@example.com")
	rec = a.do(t, http.MethodGet, "/pong", user.Bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "ping" {
		t.Errorf("body = %q, want ping", rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	a := newTestAPI(t)
	user := a.signUpUser(t, "Alice", "alice@example.com")

	rec := a.do(t, http.MethodGet, "/nope", user.Bearer, nil)
	assertEnvelope(t, rec, http.StatusNotFound, "route-not-found")
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSignUpValidation(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Alice",
		"email":    "not-an-email",
		"password": "a sensible passphrase",
	})
	assertEnvelope(t, rec, http.StatusBadRequest, "improper-payload")
}

func TestSignUpDuplicateEmailOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	a.signUpUser(t, "Alice", "alice@example.com")

	rec := a.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "a sensible passphrase",
	})
	assertEnvelope(t, rec, http.StatusConflict, "entity-already-exists")
}

func TestSignInAndRefreshFlow(t *testing.T) {
	a := newTestAPI(t)
	a.signUpUser(t, "Alice", "alice@example.com")

	rec := a.do(t, http.MethodPost, "/auth/signin", "", map[string]string{
		"email":    "alice@example.com",
		"password": "a sensible passphrase",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("sign-in status = %d: %s", rec.Code, rec.Body.String())
	}

	var signIn struct {
		Tokens struct {
			Refresh string `json:"refresh"`
		} `json:"tokens"`
	}
	decodeBody(t, rec, &signIn)

	rec = a.do(t, http.MethodPost, "/auth/refresh-token", "", map[string]string{
		"refreshToken": signIn.Tokens.Refresh,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh status = %d: %s", rec.Code, rec.Body.String())
	}

	var refresh struct {
		Tokens struct {
			Bearer string `json:"bearer"`
		} `json:"tokens"`
	}
	decodeBody(t, rec, &refresh)
	if refresh.Tokens.Bearer == "" {
		t.Fatal("refresh returned no bearer token")
	}
}

func TestSignInUnknownEmailOverHTTP(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/auth/signin", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "a sensible passphrase",
	})
	assertEnvelope(t, rec, http.StatusNotFound, "entity-not-found")
}

func TestMalformedJSONBody(t *testing.T) {
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	assertEnvelope(t, rec, http.StatusBadRequest, "improper-payload")
}
