// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-donew/mentoring-api/internal/auth"
	"github.com/go-donew/mentoring-api/internal/authz"
	"github.com/go-donew/mentoring-api/internal/config"
	"github.com/go-donew/mentoring-api/internal/middleware"
)

// Router assembles the middleware stack and route table.
type Router struct {
	cfg     *config.Config
	handler *Handler
	authn   *auth.Middleware
	authz   *authz.Middleware
}

// NewRouter creates the router.
func NewRouter(cfg *config.Config, handler *Handler, authn *auth.Middleware, authzMiddleware *authz.Middleware) *Router {
	return &Router{
		cfg:     cfg,
		handler: handler,
		authn:   authn,
		authz:   authzMiddleware,
	}
}

// Setup builds the http.Handler serving the whole API.
//
// Middleware order matters: the principal is resolved before rate
// limiting so authenticated callers land in their own tier, and the
// recoverer sits above everything that can panic.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))
	r.Use(middleware.Prometheus)
	r.Use(rt.authn.Authenticate)

	limiter := newTieredRateLimiter(rt.cfg.Security.RateLimit)
	r.Use(limiter.Limit)

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	h := rt.handler
	requireRoot := rt.authz.Require(authz.RootOnly{})
	requireSelfOrMentors := rt.authz.Require(authz.UserSubject{
		Roles: []authz.UserRole{authz.UserSelf, authz.UserMentor, authz.UserSupermentor},
	})
	requireParticipant := rt.authz.Require(authz.GroupSubject{
		Roles: []authz.GroupRole{authz.GroupParticipant},
	})
	requireGroupSupermentor := rt.authz.Require(authz.GroupSubject{
		Roles: []authz.GroupRole{authz.GroupSupermentor},
	})
	requireConversationAccess := rt.authz.Require(authz.ConversationSubject{})

	// Probes answer any method.
	r.HandleFunc("/ping", h.Ping)
	r.HandleFunc("/pong", h.Pong)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.SignUp)
		r.Post("/signin", h.SignIn)
		r.Post("/refresh-token", h.RefreshToken)
	})

	r.Route("/users", func(r chi.Router) {
		r.With(requireRoot).Get("/", h.ListUsers)

		r.Route("/{userID}", func(r chi.Router) {
			r.With(requireSelfOrMentors).Get("/", h.GetUser)

			r.Route("/attributes", func(r chi.Router) {
				r.Use(requireSelfOrMentors)
				r.Get("/", h.ListAttributes)
				r.Post("/", h.CreateAttribute)
				r.Get("/{attributeID}", h.GetAttribute)
				r.Put("/{attributeID}", h.UpdateAttribute)
				r.Delete("/{attributeID}", h.DeleteAttribute)
			})

			r.With(rt.authz.Require(authz.ReportSubject{})).
				Get("/reports/{reportID}", h.RenderReport)
		})
	})

	r.Route("/groups", func(r chi.Router) {
		// List filtering to the caller's groups happens in the handler.
		r.Get("/", h.ListGroups)
		r.With(requireRoot).Post("/", h.CreateGroup)
		r.Put("/join", h.JoinGroup)

		r.Route("/{groupID}", func(r chi.Router) {
			r.With(requireParticipant).Get("/", h.GetGroup)
			r.With(requireGroupSupermentor).Put("/", h.UpdateGroup)
			r.With(requireRoot).Delete("/", h.DeleteGroup)
		})
	})

	r.Route("/conversations", func(r chi.Router) {
		// List filtering to visible conversations happens in the handler.
		r.Get("/", h.ListConversations)
		r.With(requireRoot).Post("/", h.CreateConversation)

		r.Route("/{conversationID}", func(r chi.Router) {
			r.With(requireConversationAccess).Get("/", h.GetConversation)
			r.With(requireRoot).Put("/", h.UpdateConversation)
			r.With(requireRoot).Delete("/", h.DeleteConversation)

			r.Route("/questions", func(r chi.Router) {
				r.With(requireConversationAccess).Get("/", h.ListQuestions)
				r.With(requireRoot).Post("/", h.CreateQuestion)

				r.Route("/{questionID}", func(r chi.Router) {
					r.With(requireConversationAccess).Get("/", h.GetQuestion)
					r.With(requireRoot).Put("/", h.UpdateQuestion)
					r.With(requireRoot).Delete("/", h.DeleteQuestion)
					r.With(requireConversationAccess).Put("/answer", h.AnswerQuestion)
				})
			})
		})
	})

	r.Route("/reports", func(r chi.Router) {
		r.Use(requireRoot)
		r.Get("/", h.ListReports)
		r.Post("/", h.CreateReport)
		r.Get("/{reportID}", h.GetReport)
		r.Put("/{reportID}", h.UpdateReport)
		r.Delete("/{reportID}", h.DeleteReport)
	})

	return r
}
