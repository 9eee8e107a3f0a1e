// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

// Package handler implements the API's HTTP handlers.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SonnyEclipsed/ROYALMACCRO/internal/api/apierr"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/api/middleware"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/api/request"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/api/response"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/auth"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/observability"
	"github.com/SonnyEclipsed/ROYALMACCRO/pkg/errutil"
)

// AuthHandler serves the registration, login, presence, and reset routes.
type AuthHandler struct {
	service *auth.Service
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewAuthHandler creates an AuthHandler. metrics may be nil when the
// observability server is disabled.
func NewAuthHandler(service *auth.Service, metrics *observability.Metrics, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		metrics: metrics,
		logger:  logger,
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, h.logger, apierr.NewBadRequest("Username and password required"))
		return
	}

	_, token, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.countRegistration("error")
		if errutil.Code(err) == "AUTH_REGISTER_FAILED" {
			apierr.WriteStorageError(w, h.logger, err)
			return
		}
		apierr.WriteError(w, h.logger, err)
		return
	}

	h.countRegistration("ok")
	setSessionCookie(w, token)
	response.JSON(w, http.StatusOK, response.Register{
		Message:  fmt.Sprintf("CITIZEN %s HAS JOINED!", req.Username),
		Username: req.Username,
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, h.logger, apierr.NewBadRequest("Username, password, and player name required"))
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password, req.PlayerName)
	if err != nil {
		h.countLogin("error")
		apierr.WriteError(w, h.logger, err)
		return
	}

	h.countLogin("ok")
	setSessionCookie(w, result.Token)
	response.JSON(w, http.StatusOK, response.LoginFromProfile(result.Profile))
}

// Logout handles POST /logout. Always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	token := middleware.GetToken(r.Context())

	h.service.Logout(r.Context(), session, token)

	clearSessionCookie(w)
	response.JSON(w, http.StatusOK, response.Message{Message: "Logout successful"})
}

// Restart handles POST /restart.
func (h *AuthHandler) Restart(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		apierr.WriteError(w, h.logger, h.service.Restart(r.Context(), nil, "", ""))
		return
	}

	var req request.RestartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, h.logger, apierr.NewBadRequest("Missing password or player name"))
		return
	}

	if err := h.service.Restart(r.Context(), session, req.Password, req.NewPlayerName); err != nil {
		apierr.WriteError(w, h.logger, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RestartsTotal.Inc()
	}
	response.JSON(w, http.StatusOK, response.Message{Message: "Stats reset successfully!"})
}

// ActiveUsers handles GET /active_users.
func (h *AuthHandler) ActiveUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ActiveUsers(r.Context())
	if err != nil {
		apierr.WriteError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ActiveUsers(users))
}

// GetProfile handles GET /get_user_profile.
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())

	profile, err := h.service.GetProfile(r.Context(), session)
	if err != nil {
		apierr.WriteError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}

// Status handles GET /get_user_status.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	response.JSON(w, http.StatusOK, response.Status{LoggedIn: h.service.Status(session)})
}

func (h *AuthHandler) countRegistration(status string) {
	if h.metrics != nil {
		h.metrics.RegistrationsTotal.WithLabelValues(status).Inc()
	}
}

func (h *AuthHandler) countLogin(status string) {
	if h.metrics != nil {
		h.metrics.LoginsTotal.WithLabelValues(status).Inc()
	}
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
