// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SonnyEclipsed/ROYALMACCRO/internal/auth"
	"github.com/SonnyEclipsed/ROYALMACCRO/pkg/errutil"
)

func TestValidatePassword(t *testing.T) {
	t.Run("accepts compliant password", func(t *testing.T) {
		assert.NoError(t, auth.ValidatePassword("Sunshine!1"))
	})

	t.Run("accepts password with only the mandatory classes", func(t *testing.T) {
		assert.NoError(t, auth.ValidatePassword("AAAAAAA!"))
	})

	tests := []struct {
		name     string
		password string
		message  string
	}{
		{
			name:     "too short",
			password: "Ab!",
			message:  "Password must be at least 8 characters long",
		},
		{
			name:     "missing uppercase",
			password: "sunshine!1",
			message:  "Password must contain at least one uppercase letter",
		},
		{
			name:     "missing special character",
			password: "Sunshine1",
			message:  "Password must contain at least one special character (!@#$%^&*)",
		},
		{
			name:     "unlisted special character does not count",
			password: "Sunshine?",
			message:  "Password must contain at least one special character (!@#$%^&*)",
		},
		{
			name:     "empty password reported as too short",
			password: "",
			message:  "Password must be at least 8 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidatePassword(tt.password)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			errutil.AssertErrorCode(t, err, "AUTH_PASSWORD_POLICY")
		})
	}

	t.Run("length violation wins over all other rules", func(t *testing.T) {
		// Short AND missing uppercase AND missing special: length reports first.
		err := auth.ValidatePassword("abc")
		require.Error(t, err)
		assert.Equal(t, "Password must be at least 8 characters long", err.Error())
	})

	t.Run("uppercase violation wins over special character", func(t *testing.T) {
		err := auth.ValidatePassword("sunshine1")
		require.Error(t, err)
		assert.Equal(t, "Password must contain at least one uppercase letter", err.Error())
	})

	t.Run("length counts runes not bytes", func(t *testing.T) {
		// Seven multi-byte runes plus one ASCII: eight runes, still needs
		// the other classes but passes the length rule.
		err := auth.ValidatePassword("ééééééé!")
		require.Error(t, err)
		assert.Equal(t, "Password must contain at least one uppercase letter", err.Error())
	})

	t.Run("non-ASCII uppercase does not satisfy the uppercase rule", func(t *testing.T) {
		err := auth.ValidatePassword("Éunshine!")
		require.Error(t, err)
		assert.Equal(t, "Password must contain at least one uppercase letter", err.Error())
	})
}

func TestValidateUsername(t *testing.T) {
	t.Run("accepts short username", func(t *testing.T) {
		assert.NoError(t, auth.ValidateUsername("alice"))
	})

	t.Run("accepts username at the limit", func(t *testing.T) {
		assert.NoError(t, auth.ValidateUsername("exactly15chars_"))
	})

	t.Run("rejects empty username", func(t *testing.T) {
		err := auth.ValidateUsername("")
		require.Error(t, err)
		assert.Equal(t, "Username and password required", err.Error())
		errutil.AssertErrorCode(t, err, "AUTH_MISSING_FIELDS")
	})

	t.Run("rejects username over the limit", func(t *testing.T) {
		err := auth.ValidateUsername("sixteen_chars_xx")
		require.Error(t, err)
		assert.Equal(t, "Username must be 15 characters or less", err.Error())
		errutil.AssertErrorCode(t, err, "AUTH_USERNAME_TOO_LONG")
	})

	t.Run("limit counts runes not bytes", func(t *testing.T) {
		// Ten runes but twenty bytes: within the limit.
		assert.NoError(t, auth.ValidateUsername("åååååååååå"))
	})

	t.Run("rejects sixteen non-ASCII runes", func(t *testing.T) {
		err := auth.ValidateUsername("åååååååååååååååå")
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "AUTH_USERNAME_TOO_LONG")
	})
}

func TestValidatePlayerName(t *testing.T) {
	t.Run("accepts player name at the limit", func(t *testing.T) {
		assert.NoError(t, auth.ValidatePlayerName("exactly15chars_"))
	})

	t.Run("rejects player name over the limit", func(t *testing.T) {
		err := auth.ValidatePlayerName("sixteen_chars_xx")
		require.Error(t, err)
		assert.Equal(t, "Player name must be 15 characters or less", err.Error())
		errutil.AssertErrorCode(t, err, "AUTH_PLAYER_NAME_TOO_LONG")
	})

	t.Run("limit counts runes not bytes", func(t *testing.T) {
		assert.NoError(t, auth.ValidatePlayerName("åååååååååå"))
	})
}
