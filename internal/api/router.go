// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

// Package api exposes the auth service over JSON/HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SonnyEclipsed/ROYALMACCRO/internal/api/handler"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/api/middleware"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/auth"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/observability"
)

// RouterConfig holds the router's dependencies.
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	Sessions    *auth.SessionManager
	Metrics     *observability.Metrics
}

// NewRouter creates the API router. Route paths and bodies match the
// existing client; the session middleware resolves tokens for all routes
// and handlers decide whether one is required.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.Metrics, cfg.Logger)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Session(cfg.Sessions))

	r.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	r.HandleFunc("/restart", authHandler.Restart).Methods(http.MethodPost)
	r.HandleFunc("/active_users", authHandler.ActiveUsers).Methods(http.MethodGet)
	r.HandleFunc("/get_user_profile", authHandler.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/get_user_status", authHandler.Status).Methods(http.MethodGet)

	return r
}
