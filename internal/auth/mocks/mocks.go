// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

// Package mocks provides testify mocks for the auth package interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SonnyEclipsed/ROYALMACCRO/internal/auth"
)

type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAccountRepository mocks auth.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

var _ auth.AccountRepository = (*MockAccountRepository)(nil)

// NewMockAccountRepository creates a mock that asserts its expectations
// during test cleanup.
func NewMockAccountRepository(t constructorTestingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	args := m.Called(ctx, username, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*auth.Account, error) {
	args := m.Called(ctx, username)
	if account := args.Get(0); account != nil {
		return account.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*auth.Account, error) {
	args := m.Called(ctx, id)
	if account := args.Get(0); account != nil {
		return account.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) SetOnline(ctx context.Context, id int64, online bool) error {
	args := m.Called(ctx, id, online)
	return args.Error(0)
}

func (m *MockAccountRepository) ListOnline(ctx context.Context) ([]auth.OnlineUser, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]auth.OnlineUser), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockProfileRepository mocks auth.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

var _ auth.ProfileRepository = (*MockProfileRepository)(nil)

// NewMockProfileRepository creates a mock that asserts its expectations
// during test cleanup.
func NewMockProfileRepository(t constructorTestingT) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProfileRepository) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) CreateDefault(ctx context.Context, username, playerName string) error {
	args := m.Called(ctx, username, playerName)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdatePlayerName(ctx context.Context, username, playerName string) error {
	args := m.Called(ctx, username, playerName)
	return args.Error(0)
}

func (m *MockProfileRepository) Get(ctx context.Context, username string) (*auth.Profile, error) {
	args := m.Called(ctx, username)
	if profile := args.Get(0); profile != nil {
		return profile.(*auth.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) ResetForAccount(ctx context.Context, accountID int64, newPlayerName string) error {
	args := m.Called(ctx, accountID, newPlayerName)
	return args.Error(0)
}

// MockPasswordHasher mocks auth.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// NewMockPasswordHasher creates a mock that asserts its expectations
// during test cleanup.
func NewMockPasswordHasher(t constructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(password, digest string) (bool, error) {
	args := m.Called(password, digest)
	return args.Bool(0), args.Error(1)
}
