// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// SessionTokenBytes is the size of the random session token (hex-encoded
// to twice this length on the wire).
const SessionTokenBytes = 32

// Session binds one client connection to an identity. Sessions live only
// in process memory and are lost on restart by design.
type Session struct {
	ID         ulid.ULID
	AccountID  int64
	Username   string
	PlayerName string
	CreatedAt  time.Time
}

// GenerateSessionToken creates a secure random token and its hash.
// The plaintext token goes to the client; only the hash is retained.
func GenerateSessionToken() (token, hash string, err error) {
	tokenBytes := make([]byte, SessionTokenBytes)
	if _, err = rand.Read(tokenBytes); err != nil {
		return "", "", oops.Code("SESSION_TOKEN_GENERATE_FAILED").
			With("operation", "crypto/rand.Read").
			Wrap(err)
	}
	token = hex.EncodeToString(tokenBytes)
	return token, HashSessionToken(token), nil
}

// HashSessionToken computes the SHA-256 hash of a session token.
func HashSessionToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// SessionManager holds live sessions keyed by token hash. All methods are
// safe for concurrent use.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionManager creates an empty SessionManager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Create registers a session for the account and returns it with the
// plaintext token the client will present. PlayerName may be empty when
// no profile exists yet (registration binds username only).
func (m *SessionManager) Create(accountID int64, username, playerName string) (*Session, string, error) {
	token, tokenHash, err := GenerateSessionToken()
	if err != nil {
		return nil, "", err
	}

	session := &Session{
		ID:         ulid.Make(),
		AccountID:  accountID,
		Username:   username,
		PlayerName: playerName,
		CreatedAt:  time.Now(),
	}

	m.mu.Lock()
	m.sessions[tokenHash] = session
	m.mu.Unlock()

	return session, token, nil
}

// Get resolves a plaintext token to its session.
func (m *SessionManager) Get(token string) (*Session, error) {
	tokenHash := HashSessionToken(token)

	m.mu.RLock()
	session, ok := m.sessions[tokenHash]
	m.mu.RUnlock()

	if !ok {
		return nil, oops.Code("SESSION_INVALID").Errorf("invalid session token")
	}
	return session, nil
}

// Destroy removes the session for the token. Idempotent: destroying an
// unknown or already-destroyed token is not an error.
func (m *SessionManager) Destroy(token string) {
	tokenHash := HashSessionToken(token)

	m.mu.Lock()
	delete(m.sessions, tokenHash)
	m.mu.Unlock()
}

// Count returns the number of live sessions. Used by the metrics gauge.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
