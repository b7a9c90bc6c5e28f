// Package memory implements the ledger store as plain in-memory maps
// guarded by one store-wide mutex. Nothing survives the process. Every
// operation runs as a single critical section, which makes transfers
// atomic and keeps balances non-negative without finer-grained locking;
// the cost is that unrelated operations serialize behind each other.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/chris/bank-ledger/pkg/models"
	"github.com/chris/bank-ledger/pkg/storage"
	"github.com/google/uuid"
)

// Store owns every account and its transaction history. No other
// component holds a mutable reference to either; reads hand out copies.
type Store struct {
	mu       sync.Mutex
	accounts map[int64]*models.Account
	registry storage.AccountRegistry
	now      func() time.Time
}

// New creates an empty Store that resolves transfer recipients through
// the given registry.
func New(registry storage.AccountRegistry) *Store {
	return &Store{
		accounts: make(map[int64]*models.Account),
		registry: registry,
		now:      time.Now,
	}
}

// Make sure we conform to the interface
var _ storage.LedgerStore = (*Store)(nil)

// timestamp is the commit time stamped onto records, at the second
// resolution the API renders.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

// CreateAccount inserts a zero-balance account with an empty history.
func (s *Store) CreateAccount(ctx context.Context, accountID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountID]; ok {
		return storage.ErrConflict
	}
	s.accounts[accountID] = &models.Account{ID: accountID, CreatedAt: s.timestamp()}
	return nil
}

// Balance returns the current balance of an account in minor units.
func (s *Store) Balance(ctx context.Context, accountID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[accountID]
	if !ok {
		return 0, storage.ErrNotFound
	}
	return acct.Balance, nil
}

// Deposit increases the balance and appends a deposit record, both under
// the same critical section so balance and history stay consistent.
func (s *Store) Deposit(ctx context.Context, accountID int64, amount int64) error {
	if amount <= 0 {
		return storage.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[accountID]
	if !ok {
		return storage.ErrNotFound
	}
	acct.Balance += amount
	acct.History = append(acct.History, models.TransactionRecord{
		EntryID:   uuid.New().String(),
		Kind:      models.Deposit,
		Amount:    amount,
		CreatedAt: s.timestamp(),
	})
	return nil
}

// Withdraw decreases the balance and appends a withdraw record. The
// balance check and the mutation share one critical section, so the
// balance can never be observed below zero.
func (s *Store) Withdraw(ctx context.Context, accountID int64, amount int64) error {
	if amount <= 0 {
		return storage.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[accountID]
	if !ok {
		return storage.ErrNotFound
	}
	if acct.Balance < amount {
		return storage.ErrInsufficientFunds
	}
	acct.Balance -= amount
	acct.History = append(acct.History, models.TransactionRecord{
		EntryID:   uuid.New().String(),
		Kind:      models.Withdraw,
		Amount:    amount,
		CreatedAt: s.timestamp(),
	})
	return nil
}

// Transfer debits the sender, credits the recipient and appends the
// paired transfer_out/transfer_in records, all in one critical section.
// Both records carry the same amount and the same timestamp. Any failed
// check returns before the first mutation, so state is never partially
// applied.
func (s *Store) Transfer(ctx context.Context, fromID int64, fromUsername, toUsername string, amount int64) error {
	toUsername = strings.TrimSpace(toUsername)
	if amount <= 0 || toUsername == "" {
		return storage.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.accounts[fromID]
	if !ok {
		return storage.ErrNotFound
	}
	toID, ok := s.registry.Resolve(toUsername)
	if !ok {
		return storage.ErrNotFound
	}
	if toID == fromID {
		return storage.ErrSelfTransfer
	}
	to, ok := s.accounts[toID]
	if !ok {
		return storage.ErrNotFound
	}
	if from.Balance < amount {
		return storage.ErrInsufficientFunds
	}

	now := s.timestamp()
	from.Balance -= amount
	to.Balance += amount
	from.History = append(from.History, models.TransactionRecord{
		EntryID:      uuid.New().String(),
		Kind:         models.TransferOut,
		Amount:       amount,
		Counterparty: toUsername,
		CreatedAt:    now,
	})
	to.History = append(to.History, models.TransactionRecord{
		EntryID:      uuid.New().String(),
		Kind:         models.TransferIn,
		Amount:       amount,
		Counterparty: fromUsername,
		CreatedAt:    now,
	})
	return nil
}

// ListTransactions returns up to limit of the account's most recent
// records, newest first. Records are copied out so callers cannot mutate
// the history.
func (s *Store) ListTransactions(ctx context.Context, accountID int64, limit int) ([]models.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[accountID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if limit > len(acct.History) {
		limit = len(acct.History)
	}
	if limit < 0 {
		limit = 0
	}
	out := make([]models.TransactionRecord, 0, limit)
	for i := len(acct.History) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, acct.History[i])
	}
	return out, nil
}
