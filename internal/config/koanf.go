// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/go-donew/mentoring-api/internal/database"
	"github.com/go-donew/mentoring-api/internal/logging"
)

// DefaultConfigPaths lists the paths where config files are searched
// in order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/mentoring-api/config.yaml",
	"/etc/mentoring-api/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all defaults applied. These are
// loaded first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 20 * time.Second,
			Environment:     "development",
		},
		Database: database.Config{
			Path:     "/data/mentoring.db",
			InMemory: false,
		},
		Auth: AuthConfig{
			JWTSecret:           "",
			Issuer:              "mentoring-api",
			BearerTokenTTL:      time.Hour,
			RefreshTokenTTL:     30 * 24 * time.Hour,
			RootUsers:           nil,
			SignInRatePerSecond: 1,
			SignInBurst:         5,
		},
		Security: SecurityConfig{
			CORSOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Disabled:              false,
				Window:                time.Hour,
				AnonymousRequests:     600,
				AuthenticatedRequests: 3000,
				RootRequests:          12000,
			},
		},
		Logging: logging.Config{
			Level:     "info",
			Format:    "json",
			Caller:    false,
			Timestamp: true,
		},
	}
}

// Load builds the configuration from layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if one exists)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths lists config paths parsed as comma-separated
// slices when they arrive through environment variables.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"auth.root_users",
}

// processSliceFields converts comma-separated string values to slices
// for known slice fields. Env vars come in as strings while the config
// expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config
// paths. Unmapped variables are dropped so random environment entries
// never pollute the config.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - JWT_SECRET -> auth.jwt_secret
//   - BADGER_PATH -> database.path
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_host":        "server.host",
		"http_port":        "server.port",
		"http_timeout":     "server.read_timeout",
		"shutdown_timeout": "server.shutdown_timeout",
		"environment":      "server.environment",

		// Database mappings
		"badger_path":        "database.path",
		"database_path":      "database.path",
		"database_in_memory": "database.in_memory",

		// Auth mappings
		"jwt_secret":             "auth.jwt_secret",
		"jwt_issuer":             "auth.issuer",
		"bearer_token_ttl":       "auth.bearer_token_ttl",
		"refresh_token_ttl":      "auth.refresh_token_ttl",
		"root_users":             "auth.root_users",
		"signin_rate_per_second": "auth.signin_rate_per_second",
		"signin_burst":           "auth.signin_burst",

		// Security mappings
		"cors_origins":         "security.cors_origins",
		"disable_rate_limit":   "security.rate_limit.disabled",
		"rate_limit_window":    "security.rate_limit.window",
		"rate_limit_anonymous": "security.rate_limit.anonymous_requests",
		"rate_limit_requests":  "security.rate_limit.authenticated_requests",
		"rate_limit_root":      "security.rate_limit.root_requests",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	return ""
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// The caller is responsible for mutex protection when swapping
// configuration during reloads.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
