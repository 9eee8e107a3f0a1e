// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/SonnyEclipsed/ROYALMACCRO/internal/auth"
)

// ProfileRepository implements auth.ProfileRepository using PostgreSQL.
type ProfileRepository struct {
	pool poolIface
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(pool poolIface) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// Exists reports whether a profile row exists for the username.
func (r *ProfileRepository) Exists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.pool.QueryRow(ctx, `
		SELECT 1 FROM user_profiles WHERE username = $1
	`, username).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, oops.Code("PROFILE_EXISTS_FAILED").
			With("operation", "check profile exists").
			With("username", username).
			Wrap(err)
	}
	return true, nil
}

// CreateDefault inserts a profile with first-login defaults. Two racing
// first logins converge on the conflict clause: the display name takes
// the last write instead of one insert failing.
func (r *ProfileRepository) CreateDefault(ctx context.Context, username, playerName string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_profiles (username, player_name, user_age, user_balance, user_location, user_country)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO UPDATE SET player_name = EXCLUDED.player_name
	`, username, playerName, auth.DefaultAge, auth.DefaultBalance, auth.DefaultLocation, auth.DefaultCountry)
	if err != nil {
		return oops.Code("PROFILE_CREATE_FAILED").
			With("operation", "insert default profile").
			With("username", username).
			Wrap(err)
	}
	return nil
}

// UpdatePlayerName overwrites the display name for the username.
func (r *ProfileRepository) UpdatePlayerName(ctx context.Context, username, playerName string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE user_profiles SET player_name = $2 WHERE username = $1
	`, username, playerName)
	if err != nil {
		return oops.Code("PROFILE_UPDATE_NAME_FAILED").
			With("operation", "update player name").
			With("username", username).
			Wrap(err)
	}
	return nil
}

// Get retrieves a profile by username.
func (r *ProfileRepository) Get(ctx context.Context, username string) (*auth.Profile, error) {
	p := auth.Profile{Username: username}
	err := r.pool.QueryRow(ctx, `
		SELECT player_name, user_age, user_balance, user_location, user_country
		FROM user_profiles
		WHERE username = $1
	`, username).Scan(&p.PlayerName, &p.Age, &p.Balance, &p.Location, &p.Country)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("PROFILE_NOT_FOUND").
			With("username", username).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("PROFILE_GET_FAILED").
			With("operation", "get profile").
			With("username", username).
			Wrap(err)
	}
	return &p, nil
}

// ResetForAccount sets the display name and zeroes the balance for the
// profile belonging to the account, in one statement so concurrent reads
// never observe a half-applied reset.
func (r *ProfileRepository) ResetForAccount(ctx context.Context, accountID int64, newPlayerName string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE user_profiles
		SET player_name = $1, user_balance = 0
		WHERE username = (SELECT username FROM users WHERE id = $2)
	`, newPlayerName, accountID)
	if err != nil {
		return oops.Code("PROFILE_RESET_FAILED").
			With("operation", "reset profile").
			With("account_id", accountID).
			Wrap(err)
	}
	return nil
}

// Compile-time interface check.
var _ auth.ProfileRepository = (*ProfileRepository)(nil)
