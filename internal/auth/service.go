// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"

	"github.com/SonnyEclipsed/ROYALMACCRO/pkg/errutil"
)

// dummyPasswordHash is verified against when a username lookup misses, so
// login takes the same time whether or not the account exists. It is a
// structurally valid bcrypt digest that no password can match.
//
//nolint:gosec // G101: intentionally fake digest for timing equalization, not a credential.
const dummyPasswordHash = "$2a$10$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Service composes the validator, hasher, stores, and session manager
// into the registration, login, logout, restart, and presence operations.
type Service struct {
	accounts AccountRepository
	profiles ProfileRepository
	sessions *SessionManager
	hasher   PasswordHasher
	logger   *slog.Logger
}

// NewService creates a Service, validating its dependencies.
func NewService(accounts AccountRepository, profiles ProfileRepository, sessions *SessionManager, hasher PasswordHasher) (*Service, error) {
	return NewServiceWithLogger(accounts, profiles, sessions, hasher, slog.Default())
}

// NewServiceWithLogger creates a Service with an explicit logger.
func NewServiceWithLogger(accounts AccountRepository, profiles ProfileRepository, sessions *SessionManager, hasher PasswordHasher, logger *slog.Logger) (*Service, error) {
	if accounts == nil {
		return nil, oops.Errorf("accounts repository is required")
	}
	if profiles == nil {
		return nil, oops.Errorf("profiles repository is required")
	}
	if sessions == nil {
		return nil, oops.Errorf("session manager is required")
	}
	if hasher == nil {
		return nil, oops.Errorf("password hasher is required")
	}
	if logger == nil {
		return nil, oops.Errorf("logger is required")
	}
	return &Service{
		accounts: accounts,
		profiles: profiles,
		sessions: sessions,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// LoginResult is the outcome of a successful Login.
type LoginResult struct {
	Session *Session
	Token   string
	Profile *Profile
}

// Register creates an account and binds a session to it. The session
// carries the username only; the profile does not exist until first login.
func (s *Service) Register(ctx context.Context, username, password string) (*Session, string, error) {
	if username == "" || password == "" {
		return nil, "", oops.Code("AUTH_MISSING_FIELDS").Errorf("Username and password required")
	}
	if err := ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, "", err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	accountID, err := s.accounts.Create(ctx, username, digest)
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, "", oops.Code("AUTH_DUPLICATE_USERNAME").
				With("username", username).
				Errorf("Username already exists")
		}
		return nil, "", oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "create account").
			Wrap(err)
	}

	session, token, err := s.sessions.Create(accountID, username, "")
	if err != nil {
		return nil, "", oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "create session").
			Wrap(err)
	}

	s.logger.Info("account registered", "username", username, "account_id", accountID)
	return session, token, nil
}

// Login authenticates the credentials, binds a session, marks the account
// online, and creates or refreshes the profile. The call sequence is
// fixed: session bind, presence, profile existence check, create/update,
// fetch. A missing profile after that sequence is an integrity fault.
func (s *Service) Login(ctx context.Context, username, password, playerName string) (*LoginResult, error) {
	if username == "" || password == "" || playerName == "" {
		return nil, oops.Code("AUTH_MISSING_FIELDS").Errorf("Username, password, and player name required")
	}
	if err := ValidatePlayerName(playerName); err != nil {
		return nil, err
	}

	account, lookupErr := s.accounts.GetByUsername(ctx, username)

	// Verify against a dummy digest when the account is missing so the
	// two failure cases are indistinguishable in both timing and body.
	targetHash := dummyPasswordHash
	accountExists := false
	if lookupErr == nil {
		targetHash = account.PasswordHash
		accountExists = true
	} else if !errors.Is(lookupErr, ErrNotFound) {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "get account by username").
			Wrap(lookupErr)
	}

	valid, err := s.hasher.Verify(password, targetHash)
	if err != nil {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(err)
	}
	if !accountExists || !valid {
		return nil, oops.Code("AUTH_INVALID_CREDENTIALS").Errorf("Invalid credentials")
	}

	session, token, err := s.sessions.Create(account.ID, username, playerName)
	if err != nil {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "create session").
			Wrap(err)
	}

	if err := s.accounts.SetOnline(ctx, account.ID, true); err != nil {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "set online").
			Wrap(err)
	}

	exists, err := s.profiles.Exists(ctx, username)
	if err != nil {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "check profile exists").
			Wrap(err)
	}
	if !exists {
		if err := s.profiles.CreateDefault(ctx, username, playerName); err != nil {
			return nil, oops.Code("AUTH_LOGIN_FAILED").
				With("operation", "create default profile").
				Wrap(err)
		}
		s.logger.Info("profile initialized", "username", username)
	} else {
		// Login always overwrites the display name, changed or not.
		if err := s.profiles.UpdatePlayerName(ctx, username, playerName); err != nil {
			return nil, oops.Code("AUTH_LOGIN_FAILED").
				With("operation", "update player name").
				Wrap(err)
		}
	}

	profile, err := s.profiles.Get(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// The profile was just created or updated; its absence means
			// our own invariants are broken.
			integrity := oops.Code("AUTH_PROFILE_NOT_FOUND").
				With("username", username).
				Errorf("User profile not found")
			errutil.LogError(s.logger, "profile missing after login write", integrity)
			return nil, integrity
		}
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "fetch profile").
			Wrap(err)
	}

	return &LoginResult{Session: session, Token: token, Profile: profile}, nil
}

// Logout marks the session's account offline and destroys the session.
// It always succeeds, with or without a bound session.
func (s *Service) Logout(ctx context.Context, session *Session, token string) {
	if session != nil {
		if err := s.accounts.SetOnline(ctx, session.AccountID, false); err != nil {
			errutil.LogWarn(s.logger, "failed to clear online flag on logout", err)
		}
	}
	if token != "" {
		s.sessions.Destroy(token)
	}
}

// Restart verifies the session's password and atomically resets the
// profile: new display name, balance zero. The session is unchanged.
func (s *Service) Restart(ctx context.Context, session *Session, password, newPlayerName string) error {
	if session == nil {
		return oops.Code("AUTH_NOT_LOGGED_IN").Errorf("User not logged in")
	}
	if password == "" || newPlayerName == "" {
		return oops.Code("AUTH_MISSING_FIELDS").Errorf("Missing password or player name")
	}

	account, err := s.accounts.GetByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// A live session pointing at a missing account is an
			// integrity fault; surfaced as not-found, logged as ours.
			integrity := oops.Code("AUTH_ACCOUNT_NOT_FOUND").
				With("account_id", session.AccountID).
				Errorf("User not found")
			errutil.LogError(s.logger, "session bound to missing account", integrity)
			return integrity
		}
		return oops.Code("AUTH_RESTART_FAILED").
			With("operation", "get account by id").
			Wrap(err)
	}

	valid, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return oops.Code("AUTH_RESTART_FAILED").
			With("operation", "verify password").
			Wrap(err)
	}
	if !valid {
		return oops.Code("AUTH_INCORRECT_PASSWORD").Errorf("Incorrect password")
	}

	if err := s.profiles.ResetForAccount(ctx, account.ID, newPlayerName); err != nil {
		return oops.Code("AUTH_RESTART_FAILED").
			With("operation", "reset profile").
			Wrap(err)
	}

	s.logger.Info("profile reset", "username", account.Username)
	return nil
}

// ActiveUsers returns all online accounts with their display names. An
// empty result is an ordinary empty slice; the transport layer decides
// how to represent absence on the wire.
func (s *Service) ActiveUsers(ctx context.Context) ([]OnlineUser, error) {
	users, err := s.accounts.ListOnline(ctx)
	if err != nil {
		return nil, oops.Code("AUTH_ACTIVE_USERS_FAILED").
			With("operation", "list online").
			Wrap(err)
	}
	return users, nil
}

// GetProfile returns the session's profile. Read-only.
func (s *Service) GetProfile(ctx context.Context, session *Session) (*Profile, error) {
	if session == nil {
		return nil, oops.Code("AUTH_NOT_LOGGED_IN").Errorf("No user logged in")
	}
	profile, err := s.profiles.Get(ctx, session.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code("AUTH_PROFILE_NOT_FOUND").
				With("username", session.Username).
				Errorf("User not found")
		}
		return nil, oops.Code("AUTH_PROFILE_FAILED").
			With("operation", "fetch profile").
			Wrap(err)
	}
	return profile, nil
}

// Status reports whether the session is authenticated. Read-only.
func (s *Service) Status(session *Session) bool {
	return session != nil
}
