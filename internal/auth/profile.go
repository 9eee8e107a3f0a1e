// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package auth

import (
	"context"

	"github.com/samber/oops"
)

// MaxPlayerNameLength is the display name length ceiling.
const MaxPlayerNameLength = 15

// Defaults written when a profile is created on first login. The schema
// column default for location is 'Starting Point', but first login has
// always written 'Wood Shed'; both are kept as-is for compatibility.
const (
	DefaultAge      = 25
	DefaultBalance  = 1000
	DefaultLocation = "Wood Shed"
	DefaultCountry  = "United States"
)

// Profile is the mutable per-account game state, keyed 1:1 by username.
// Balance is only ever reset to zero by Restart; gameplay collaborators
// mutate it out of band.
type Profile struct {
	Username   string
	PlayerName string
	Age        int
	Balance    int
	Location   string
	Country    string
}

// ValidatePlayerName validates a display name supplied at login.
func ValidatePlayerName(playerName string) error {
	if len([]rune(playerName)) > MaxPlayerNameLength {
		return oops.Code("AUTH_PLAYER_NAME_TOO_LONG").
			With("max", MaxPlayerNameLength).
			Errorf("Player name must be 15 characters or less")
	}
	return nil
}

// ProfileRepository manages profile persistence.
type ProfileRepository interface {
	// Exists reports whether a profile row exists for the username.
	Exists(ctx context.Context, username string) (bool, error)

	// CreateDefault inserts a profile with the first-login defaults and
	// the supplied display name. If a concurrent first login already
	// inserted the row, the display name is overwritten in place
	// (last write wins) instead of failing.
	CreateDefault(ctx context.Context, username, playerName string) error

	// UpdatePlayerName overwrites the display name for the username.
	UpdatePlayerName(ctx context.Context, username, playerName string) error

	// Get retrieves a profile by username.
	Get(ctx context.Context, username string) (*Profile, error)

	// ResetForAccount sets the display name and zeroes the balance for
	// the profile whose username matches the given account id, as a
	// single atomic statement. Other fields are untouched.
	ResetForAccount(ctx context.Context, accountID int64, newPlayerName string) error
}
