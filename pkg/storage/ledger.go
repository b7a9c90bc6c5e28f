package storage

import (
	"context"

	"github.com/chris/bank-ledger/pkg/models"
)

// LedgerReader defines the interface for reading ledger data. Reads never
// mutate state.
type LedgerReader interface {
	// Balance returns the current balance of an account in minor units.
	Balance(ctx context.Context, accountID int64) (int64, error)

	// ListTransactions retrieves up to limit of the account's most recent
	// records, newest first. The caller clamps limit before invocation.
	ListTransactions(ctx context.Context, accountID int64, limit int) ([]models.TransactionRecord, error)
}

// LedgerWriter defines the mutating ledger operations. Each call either
// fully applies or leaves state exactly as it was.
type LedgerWriter interface {
	// CreateAccount inserts a zero-balance account with an empty history.
	CreateAccount(ctx context.Context, accountID int64) error

	// Deposit increases the balance and appends a deposit record.
	Deposit(ctx context.Context, accountID int64, amount int64) error

	// Withdraw decreases the balance and appends a withdraw record.
	Withdraw(ctx context.Context, accountID int64, amount int64) error

	// Transfer atomically moves amount from the sender to the account that
	// toUsername resolves to, appending a paired transfer_out/transfer_in
	// record on each side. fromUsername is denormalized into the
	// recipient's record for display.
	Transfer(ctx context.Context, fromID int64, fromUsername, toUsername string, amount int64) error
}

// LedgerStore combines the reader and writer interfaces.
type LedgerStore interface {
	LedgerReader
	LedgerWriter
}
