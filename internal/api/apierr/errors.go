// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

// Package apierr converts service errors into the API's wire format:
// a `{"error": "<message>"}` body plus a status code.
package apierr

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/samber/oops"

	"github.com/SonnyEclipsed/ROYALMACCRO/pkg/errutil"
)

// ErrorResponse is the error body the existing client expects.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Generic messages for faults whose detail must not cross the boundary.
const (
	MsgDatabaseError = "Database error"
	MsgGenericError  = "An error occurred"
)

// statusByCode maps service error codes to HTTP statuses. Codes absent
// from the map are internal faults and surface as 500 with a generic
// message (never SQL text or stack traces).
var statusByCode = map[string]int{
	"AUTH_MISSING_FIELDS":       http.StatusBadRequest,
	"AUTH_USERNAME_TOO_LONG":    http.StatusBadRequest,
	"AUTH_PLAYER_NAME_TOO_LONG": http.StatusBadRequest,
	"AUTH_PASSWORD_POLICY":      http.StatusBadRequest,
	"AUTH_EMPTY_PASSWORD":       http.StatusBadRequest,
	// The original client expects 400 for a taken username, not 409.
	"AUTH_DUPLICATE_USERNAME":  http.StatusBadRequest,
	"AUTH_INVALID_CREDENTIALS": http.StatusUnauthorized,
	"AUTH_INCORRECT_PASSWORD":  http.StatusUnauthorized,
	"AUTH_NOT_LOGGED_IN":       http.StatusUnauthorized,
	"AUTH_PROFILE_NOT_FOUND":   http.StatusNotFound,
	"AUTH_ACCOUNT_NOT_FOUND":   http.StatusNotFound,
}

// Status returns the HTTP status for a service error.
func Status(err error) int {
	if status, ok := statusByCode[errutil.Code(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError writes the wire representation of err. Internal faults (500)
// are logged with full context and surfaced with a generic message only.
func WriteError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := Status(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		errutil.LogError(logger, "internal error", err)
		message = MsgGenericError
	}
	if oopsErr, ok := oops.AsOops(err); ok && status != http.StatusInternalServerError {
		// Surface only the coded message, not wrapped storage detail.
		message = oopsErr.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteStorageError writes a 500 with the register path's wire message.
func WriteStorageError(w http.ResponseWriter, logger *slog.Logger, err error) {
	errutil.LogError(logger, "storage error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: MsgDatabaseError})
}

// NewBadRequest creates a 400 error with the given message.
func NewBadRequest(message string) error {
	return oops.Code("AUTH_MISSING_FIELDS").Errorf("%s", message)
}
