// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

// Package auth implements the credential and profile consistency engine:
// account registration, login/logout, presence tracking, and progress reset.
//
// # Domain Types
//
// Account is the authentication record (username, password digest, online
// flag). Profile is the mutable per-account game state, keyed 1:1 by
// username and created lazily on first login. Session is the ephemeral
// in-memory identity binding handed to a client; it is deliberately lost
// on process restart.
//
// # Services
//
// Service coordinates all operations against the repositories. It takes
// explicit *Session values rather than ambient per-request state so every
// dependency is visible and testable without a live transport.
package auth
