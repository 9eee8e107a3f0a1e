// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package auth

import "errors"

// Sentinel errors returned by repositories. Services wrap these with
// oops codes before they cross the API boundary.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned when account creation hits the
	// username uniqueness constraint. It is the only error path the
	// account store distinguishes from generic storage failure.
	ErrDuplicateUsername = errors.New("username already exists")
)
