package models

import "time"

// TransactionKind defines the possible kinds of a transaction record.
type TransactionKind string

const (
	Deposit     TransactionKind = "deposit"
	Withdraw    TransactionKind = "withdraw"
	TransferOut TransactionKind = "transfer_out"
	TransferIn  TransactionKind = "transfer_in"
)

// Account represents the internal domain model for an account.
// The balance is held in minor units (cents) and never goes negative.
type Account struct {
	ID        int64
	Balance   int64
	History   []TransactionRecord
	CreatedAt time.Time
}

// TransactionRecord is one entry in an account's append-only history.
// Counterparty carries the username of the other side of a transfer and
// is empty for deposits and withdrawals.
type TransactionRecord struct {
	EntryID      string
	Kind         TransactionKind
	Amount       int64
	Counterparty string
	CreatedAt    time.Time
}

// User represents a registered user in the account registry. The user id
// doubles as the account id in the ledger.
type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
