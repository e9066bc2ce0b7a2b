// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

/*
Package config loads and validates application configuration.

Configuration is layered with koanf: struct defaults first, then an
optional YAML config file, then environment variables, so that any
setting can be overridden without a file.

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Invalid configuration")
	}

Environment variables use flat legacy names mapped onto the nested
structure (HTTP_PORT -> server.port, JWT_SECRET -> auth.jwt_secret).
Slice-valued settings (CORS_ORIGINS, ROOT_USERS) accept
comma-separated values.

Production mode (ENVIRONMENT=production) refuses to start without a
JWT secret of at least 32 characters.
*/
package config
