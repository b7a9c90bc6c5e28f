package storage

import "errors"

// Domain errors are expected, recoverable outcomes. The HTTP layer maps
// each one to a status code; none of them ever terminates the process.
var (
	// ErrInvalidAmount is returned when an operation amount is not positive,
	// or a transfer recipient name is blank.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal or transfer exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotFound is returned when an account or transfer recipient does not exist.
	ErrNotFound = errors.New("account not found")

	// ErrConflict is returned when creating an account whose id is already taken.
	ErrConflict = errors.New("account already exists")

	// ErrSelfTransfer is returned when a transfer recipient resolves to the sender.
	ErrSelfTransfer = errors.New("cannot transfer to self")
)
