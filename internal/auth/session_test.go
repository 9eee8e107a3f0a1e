// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package auth_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/SonnyEclipsed/ROYALMACCRO/internal/auth"
)

func TestGenerateSessionToken(t *testing.T) {
	t.Run("token is 64 hex characters", func(t *testing.T) {
		token, hash, err := auth.GenerateSessionToken()
		require.NoError(t, err)
		assert.Len(t, token, 64) // 32 bytes hex-encoded
		assert.Len(t, hash, 64)  // SHA-256 hex-encoded
		assert.NotEqual(t, token, hash)
	})

	t.Run("hash matches HashSessionToken", func(t *testing.T) {
		token, hash, err := auth.GenerateSessionToken()
		require.NoError(t, err)
		assert.Equal(t, auth.HashSessionToken(token), hash)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		token1, _, err := auth.GenerateSessionToken()
		require.NoError(t, err)
		token2, _, err := auth.GenerateSessionToken()
		require.NoError(t, err)
		assert.NotEqual(t, token1, token2)
	})
}

func TestSessionManager(t *testing.T) {
	t.Run("create then get resolves the session", func(t *testing.T) {
		mgr := auth.NewSessionManager()

		session, token, err := mgr.Create(42, "alice", "Explorer")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.NotEmpty(t, token)
		assert.EqualValues(t, 42, session.AccountID)
		assert.Equal(t, "alice", session.Username)
		assert.Equal(t, "Explorer", session.PlayerName)
		assert.False(t, session.CreatedAt.IsZero())

		got, err := mgr.Get(token)
		require.NoError(t, err)
		assert.Same(t, session, got)
	})

	t.Run("player name may be empty at registration", func(t *testing.T) {
		mgr := auth.NewSessionManager()

		session, _, err := mgr.Create(7, "bob", "")
		require.NoError(t, err)
		assert.Empty(t, session.PlayerName)
	})

	t.Run("get rejects unknown token", func(t *testing.T) {
		mgr := auth.NewSessionManager()

		_, err := mgr.Get("deadbeef")
		require.Error(t, err)
	})

	t.Run("destroy removes the session", func(t *testing.T) {
		mgr := auth.NewSessionManager()

		_, token, err := mgr.Create(1, "alice", "Explorer")
		require.NoError(t, err)

		mgr.Destroy(token)

		_, err = mgr.Get(token)
		require.Error(t, err)
	})

	t.Run("destroy is idempotent", func(t *testing.T) {
		mgr := auth.NewSessionManager()

		_, token, err := mgr.Create(1, "alice", "Explorer")
		require.NoError(t, err)

		mgr.Destroy(token)
		mgr.Destroy(token)
		mgr.Destroy("never-issued")
		assert.Equal(t, 0, mgr.Count())
	})

	t.Run("count tracks live sessions", func(t *testing.T) {
		mgr := auth.NewSessionManager()
		assert.Equal(t, 0, mgr.Count())

		_, token1, err := mgr.Create(1, "alice", "Explorer")
		require.NoError(t, err)
		_, _, err = mgr.Create(2, "bob", "Wanderer")
		require.NoError(t, err)
		assert.Equal(t, 2, mgr.Count())

		mgr.Destroy(token1)
		assert.Equal(t, 1, mgr.Count())
	})

	t.Run("same account may hold multiple sessions", func(t *testing.T) {
		mgr := auth.NewSessionManager()

		_, token1, err := mgr.Create(1, "alice", "Explorer")
		require.NoError(t, err)
		_, token2, err := mgr.Create(1, "alice", "Explorer")
		require.NoError(t, err)

		assert.NotEqual(t, token1, token2)
		assert.Equal(t, 2, mgr.Count())
	})
}

func TestSessionManager_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	mgr := auth.NewSessionManager()
	const workers = 16

	var wg sync.WaitGroup
	tokens := make([]string, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, token, err := mgr.Create(int64(i), fmt.Sprintf("user%d", i), "Player")
			assert.NoError(t, err)
			tokens[i] = token
			_, err = mgr.Get(token)
			assert.NoError(t, err)
			_ = mgr.Count()
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, mgr.Count())

	for _, token := range tokens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mgr.Destroy(token)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, mgr.Count())
}
