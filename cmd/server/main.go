// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

// Package main is the entry point for the mentoring API server.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered load via Koanf v2 (defaults, YAML file,
//     environment variables)
//  2. Logging: zerolog global logger
//  3. Store: Badger database and the typed entity stores
//  4. Identity: token manager, credential store and the account service
//  5. Authorization: the relationship-derived decision engine
//  6. HTTP: chi router with authentication, authorization, rate
//     limiting and metrics middleware
//  7. Supervision: suture tree running the HTTP server and the store
//     garbage collector, shut down on SIGINT/SIGTERM
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-donew/mentoring-api/internal/api"
	"github.com/go-donew/mentoring-api/internal/auth"
	"github.com/go-donew/mentoring-api/internal/authz"
	"github.com/go-donew/mentoring-api/internal/config"
	"github.com/go-donew/mentoring-api/internal/database"
	"github.com/go-donew/mentoring-api/internal/logging"
	"github.com/go-donew/mentoring-api/internal/supervisor"
	"github.com/go-donew/mentoring-api/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(cfg.Logging)
	logger := logging.WithComponent("server")
	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("address", listenAddress(cfg)).
		Msg("Starting mentoring API server")

	store, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	tokens, err := auth.NewTokenManager(&cfg.Auth)
	if err != nil {
		return fmt.Errorf("building token manager: %w", err)
	}
	credentials := auth.NewCredentialStore(store.DB())
	identity := auth.NewIdentity(&cfg.Auth, tokens, credentials, store.Users)

	engine := authz.NewEngine(store.Groups)

	handler := api.NewHandler(store, identity, engine)
	router := api.NewRouter(cfg, handler, auth.NewMiddleware(identity), authz.NewMiddleware(engine))

	server := &http.Server{
		Addr:         listenAddress(cfg),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout

	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	tree.AddAPIService(services.NewHTTPService(server, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(services.NewGCService(store, 0))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	logger.Info().Msg("Server stopped")
	return nil
}

func listenAddress(cfg *config.Config) string {
	return net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
}
