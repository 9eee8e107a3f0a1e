// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/oops"
)

// Server timeouts.
const (
	readTimeout  = 15 * time.Second
	writeTimeout = 30 * time.Second
)

// Server wraps the HTTP server with graceful shutdown support.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates an API server listening on addr.
func NewServer(addr string, router http.Handler, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		logger: logger,
	}
}

// Start begins listening for HTTP requests. It blocks until the server
// stops; a graceful shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("api server starting", "addr", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return oops.Code("API_SERVER_FAILED").With("addr", s.server.Addr).Wrap(err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("api server stopping")
	if err := s.server.Shutdown(ctx); err != nil {
		return oops.Code("API_SERVER_SHUTDOWN_FAILED").Wrap(err)
	}
	return nil
}
