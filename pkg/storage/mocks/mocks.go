// Package mocks provides testify mocks of the storage interfaces for
// handler tests.
package mocks

import (
	"context"

	"github.com/chris/bank-ledger/pkg/models"
	"github.com/stretchr/testify/mock"
)

// LedgerStore is a mock implementation of storage.LedgerStore.
type LedgerStore struct {
	mock.Mock
}

func (m *LedgerStore) CreateAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *LedgerStore) Balance(ctx context.Context, accountID int64) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LedgerStore) Deposit(ctx context.Context, accountID int64, amount int64) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

func (m *LedgerStore) Withdraw(ctx context.Context, accountID int64, amount int64) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

func (m *LedgerStore) Transfer(ctx context.Context, fromID int64, fromUsername, toUsername string, amount int64) error {
	args := m.Called(ctx, fromID, fromUsername, toUsername, amount)
	return args.Error(0)
}

func (m *LedgerStore) ListTransactions(ctx context.Context, accountID int64, limit int) ([]models.TransactionRecord, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TransactionRecord), args.Error(1)
}

// AccountRegistry is a mock implementation of storage.AccountRegistry.
type AccountRegistry struct {
	mock.Mock
}

func (m *AccountRegistry) Resolve(username string) (int64, bool) {
	args := m.Called(username)
	return args.Get(0).(int64), args.Bool(1)
}
