// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.BearerTokenTTL != time.Hour {
		t.Errorf("default bearer TTL = %v, want 1h", cfg.Auth.BearerTokenTTL)
	}
	if cfg.IsProduction() {
		t.Error("default environment should not be production")
	}
}

func TestValidate(t *testing.T) {
	secret := strings.Repeat("s", 32)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name: "production without secret",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.Auth.JWTSecret = ""
			},
			wantErr: "jwt_secret",
		},
		{
			name:    "short secret",
			mutate:  func(c *Config) { c.Auth.JWTSecret = "too-short" },
			wantErr: "at least 32 characters",
		},
		{
			name:    "refresh TTL not beyond bearer TTL",
			mutate:  func(c *Config) { c.Auth.RefreshTokenTTL = c.Auth.BearerTokenTTL },
			wantErr: "refresh_token_ttl",
		},
		{
			name: "rate limit ceilings inverted",
			mutate: func(c *Config) {
				c.Security.RateLimit.AnonymousRequests = 5000
			},
			wantErr: "ordered",
		},
		{
			name: "disabled rate limit skips ceiling checks",
			mutate: func(c *Config) {
				c.Security.RateLimit.Disabled = true
				c.Security.RateLimit.AnonymousRequests = 0
			},
		},
		{
			name: "on-disk store needs a path",
			mutate: func(c *Config) {
				c.Database.Path = ""
				c.Database.InMemory = false
			},
			wantErr: "database.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Auth.JWTSecret = secret
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"JWT_SECRET", "auth.jwt_secret"},
		{"BADGER_PATH", "database.path"},
		{"ROOT_USERS", "auth.root_users"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit.disabled"},
		{"LOG_LEVEL", "logging.level"},
		// Unmapped variables must be dropped entirely.
		{"PATH", ""},
		{"HOME", ""},
		{"AWS_SECRET_ACCESS_KEY", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("ROOT_USERS", "root@example.com, admin@example.com")
	t.Setenv("DATABASE_IN_MEMORY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if !cfg.Database.InMemory {
		t.Error("in-memory flag not applied")
	}

	want := []string{"root@example.com", "admin@example.com"}
	if len(cfg.Auth.RootUsers) != len(want) {
		t.Fatalf("root users = %v, want %v", cfg.Auth.RootUsers, want)
	}
	for i := range want {
		if cfg.Auth.RootUsers[i] != want[i] {
			t.Errorf("root user %d = %q, want %q", i, cfg.Auth.RootUsers[i], want[i])
		}
	}
}
