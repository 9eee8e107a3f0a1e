// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package auth

import (
	"strings"

	"github.com/samber/oops"
)

// Password policy constraints.
const (
	MinPasswordLength = 8

	// passwordSpecialChars is the fixed special-character set; no other
	// characters are restricted.
	passwordSpecialChars = "!@#$%^&*"
)

// ValidatePassword checks a plaintext password against the registration
// policy. Rules are evaluated in fixed order and the first violation wins:
// length, then uppercase, then special character. Unicode passwords are
// accepted subject to the same rules over the rune sequence.
func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return oops.Code("AUTH_PASSWORD_POLICY").
			With("rule", "length").
			Errorf("Password must be at least 8 characters long")
	}
	if !strings.ContainsFunc(password, isUpperASCII) {
		return oops.Code("AUTH_PASSWORD_POLICY").
			With("rule", "uppercase").
			Errorf("Password must contain at least one uppercase letter")
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		return oops.Code("AUTH_PASSWORD_POLICY").
			With("rule", "special").
			Errorf("Password must contain at least one special character (!@#$%%^&*)")
	}
	return nil
}

func isUpperASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
