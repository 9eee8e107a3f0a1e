// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package auth

import (
	"context"
	"time"

	"github.com/samber/oops"
)

// MaxUsernameLength is the username length ceiling. Usernames are
// case-sensitive; uniqueness is enforced by the account store.
const MaxUsernameLength = 15

// Account represents an authentication record in the users relation.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Online       bool
	JoinedAt     time.Time
}

// OnlineUser is one entry of the presence listing: an online account
// joined to its profile's display name.
type OnlineUser struct {
	Username   string
	PlayerName string
}

// ValidateUsername validates a username for registration.
// Evaluation order matches the registration flow: presence first, then
// length. The first violated rule wins.
func ValidateUsername(username string) error {
	if username == "" {
		return oops.Code("AUTH_MISSING_FIELDS").Errorf("Username and password required")
	}
	if len([]rune(username)) > MaxUsernameLength {
		return oops.Code("AUTH_USERNAME_TOO_LONG").
			With("max", MaxUsernameLength).
			Errorf("Username must be 15 characters or less")
	}
	return nil
}

// AccountRepository manages account persistence.
type AccountRepository interface {
	// Create stores a new account with online=false and returns its id.
	// Returns ErrDuplicateUsername (wrapped) if the username is taken;
	// every other failure surfaces as a generic storage error.
	Create(ctx context.Context, username, passwordHash string) (int64, error)

	// GetByUsername retrieves an account by username (case-sensitive).
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// GetByID retrieves an account by id.
	GetByID(ctx context.Context, id int64) (*Account, error)

	// SetOnline sets the presence flag. Idempotent: setting a flag to
	// its current value is not an error.
	SetOnline(ctx context.Context, id int64, online bool) error

	// ListOnline returns all online accounts joined to their profile's
	// display name. Order is not contractual.
	ListOnline(ctx context.Context) ([]OnlineUser, error)
}
