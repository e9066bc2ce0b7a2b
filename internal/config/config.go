// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package config

import (
	"fmt"
	"time"

	"github.com/go-donew/mentoring-api/internal/database"
	"github.com/go-donew/mentoring-api/internal/logging"
)

// Config is the top-level application configuration. Values are
// layered: struct defaults, then an optional YAML file, then
// environment variables.
type Config struct {
	Server   ServerConfig    `koanf:"server"`
	Database database.Config `koanf:"database"`
	Auth     AuthConfig      `koanf:"auth"`
	Security SecurityConfig  `koanf:"security"`
	Logging  logging.Config  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8080
	Port int `koanf:"port"`

	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds how long writing a response may take.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is "development" or "production". Production refuses
	// to start without a JWT secret.
	Environment string `koanf:"environment"`
}

// AuthConfig holds identity and token settings.
type AuthConfig struct {
	// JWTSecret signs bearer and refresh tokens (HS256).
	JWTSecret string `koanf:"jwt_secret"`

	// Issuer is the iss claim stamped on issued tokens.
	Issuer string `koanf:"issuer"`

	// BearerTokenTTL is the bearer token lifetime. Default: 1h
	BearerTokenTTL time.Duration `koanf:"bearer_token_ttl"`

	// RefreshTokenTTL is the refresh token lifetime. Default: 30 days
	RefreshTokenTTL time.Duration `koanf:"refresh_token_ttl"`

	// RootUsers lists email addresses granted the super-admin flag on
	// sign-up.
	RootUsers []string `koanf:"root_users"`

	// SignInRatePerSecond throttles credential checks per client.
	SignInRatePerSecond float64 `koanf:"signin_rate_per_second"`

	// SignInBurst is the burst allowance for credential checks.
	SignInBurst int `koanf:"signin_burst"`
}

// RateLimitConfig holds the tiered hourly request ceilings. Anonymous
// callers get the smallest allowance, super-admins the largest.
type RateLimitConfig struct {
	// Disabled turns rate limiting off entirely (tests only).
	Disabled bool `koanf:"disabled"`

	// Window is the limiting window. Default: 1h
	Window time.Duration `koanf:"window"`

	// AnonymousRequests is the per-window ceiling keyed by client IP.
	AnonymousRequests int `koanf:"anonymous_requests"`

	// AuthenticatedRequests is the per-window ceiling keyed by token.
	AuthenticatedRequests int `koanf:"authenticated_requests"`

	// RootRequests is the per-window ceiling for super-admins.
	RootRequests int `koanf:"root_requests"`
}

// SecurityConfig holds cross-request security settings.
type SecurityConfig struct {
	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimit configures the tiered request ceilings.
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.Environment == "production" && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required in production")
	}
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters, got %d", len(c.Auth.JWTSecret))
	}

	if c.Auth.BearerTokenTTL <= 0 {
		return fmt.Errorf("auth.bearer_token_ttl must be positive")
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.BearerTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must exceed auth.bearer_token_ttl")
	}

	rl := c.Security.RateLimit
	if !rl.Disabled {
		if rl.AnonymousRequests <= 0 || rl.AuthenticatedRequests <= 0 || rl.RootRequests <= 0 {
			return fmt.Errorf("rate limit ceilings must be positive")
		}
		if rl.AnonymousRequests > rl.AuthenticatedRequests || rl.AuthenticatedRequests > rl.RootRequests {
			return fmt.Errorf("rate limit ceilings must be ordered anonymous <= authenticated <= root")
		}
	}

	if !c.Database.InMemory && c.Database.Path == "" {
		return fmt.Errorf("database.path is required unless database.in_memory is set")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
