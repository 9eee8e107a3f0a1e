// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

// Package request defines the JSON request bodies of the API.
package request

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login. The playerName field name
// matches the existing client.
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	PlayerName string `json:"playerName"`
}

// RestartRequest is the body of POST /restart.
type RestartRequest struct {
	Password      string `json:"password"`
	NewPlayerName string `json:"newPlayerName"`
}
