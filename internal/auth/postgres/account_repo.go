// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

// Package postgres implements the auth repositories on PostgreSQL.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/SonnyEclipsed/ROYALMACCRO/internal/auth"
)

// poolIface is the subset of pgxpool.Pool the repositories use. It is
// also satisfied by pgxmock.PgxPoolIface in tests.
type poolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AccountRepository implements auth.AccountRepository using PostgreSQL.
type AccountRepository struct {
	pool poolIface
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool poolIface) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create stores a new account and returns its id. A username uniqueness
// violation maps to auth.ErrDuplicateUsername; anything else is generic
// storage failure.
func (r *AccountRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, username, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, oops.Code("ACCOUNT_DUPLICATE").
				With("username", username).
				Wrap(auth.ErrDuplicateUsername)
		}
		return 0, oops.Code("ACCOUNT_CREATE_FAILED").
			With("operation", "insert account").
			With("username", username).
			Wrap(err)
	}
	return id, nil
}

// GetByUsername retrieves an account by username (case-sensitive).
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*auth.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, online, joined_at
		FROM users
		WHERE username = $1
	`, username)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").
			With("username", username).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_BY_USERNAME_FAILED").
			With("operation", "get account by username").
			With("username", username).
			Wrap(err)
	}
	return account, nil
}

// GetByID retrieves an account by id.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*auth.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, online, joined_at
		FROM users
		WHERE id = $1
	`, id)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").
			With("id", id).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_BY_ID_FAILED").
			With("operation", "get account by id").
			With("id", id).
			Wrap(err)
	}
	return account, nil
}

// SetOnline sets the presence flag. Writing the current value affects no
// rows and is not an error.
func (r *AccountRepository) SetOnline(ctx context.Context, id int64, online bool) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET online = $2 WHERE id = $1
	`, id, online)
	if err != nil {
		return oops.Code("ACCOUNT_SET_ONLINE_FAILED").
			With("operation", "set online").
			With("id", id).
			With("online", online).
			Wrap(err)
	}
	return nil
}

// ListOnline returns all online accounts joined to their profile's
// display name.
func (r *AccountRepository) ListOnline(ctx context.Context) ([]auth.OnlineUser, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_profiles.player_name, users.username
		FROM users
		JOIN user_profiles ON users.username = user_profiles.username
		WHERE users.online = TRUE
	`)
	if err != nil {
		return nil, oops.Code("ACCOUNT_LIST_ONLINE_FAILED").
			With("operation", "list online accounts").
			Wrap(err)
	}
	defer rows.Close()

	var users []auth.OnlineUser
	for rows.Next() {
		var u auth.OnlineUser
		if err := rows.Scan(&u.PlayerName, &u.Username); err != nil {
			return nil, oops.Code("ACCOUNT_LIST_ONLINE_FAILED").
				With("operation", "scan online account row").
				Wrap(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("ACCOUNT_LIST_ONLINE_FAILED").
			With("operation", "iterate online accounts").
			Wrap(err)
	}
	return users, nil
}

// scanAccount scans a single row into an Account. Callers are responsible
// for handling pgx.ErrNoRows.
func scanAccount(row pgx.Row) (*auth.Account, error) {
	var a auth.Account
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Online, &a.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err //nolint:wrapcheck // Callers wrap with context-specific info
		}
		return nil, oops.Code("ACCOUNT_SCAN_FAILED").
			With("operation", "scan account").
			Wrap(err)
	}
	return &a, nil
}

// Compile-time interface check.
var _ auth.AccountRepository = (*AccountRepository)(nil)
