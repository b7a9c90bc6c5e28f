// Package api defines the JSON request and response shapes of the HTTP
// surface. Amounts cross this boundary as decimal strings only; minor
// units never leak out of the domain layer.
package api

// Credentials is the request body for registration and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AmountRequest is the request body for deposits and withdrawals.
type AmountRequest struct {
	Amount string `json:"amount"`
}

// TransferRequest is the request body for peer-to-peer transfers.
type TransferRequest struct {
	ToUsername string `json:"to_username"`
	Amount     string `json:"amount"`
}

// Me describes the authenticated user and their formatted balance.
type Me struct {
	Username string `json:"username"`
	Balance  string `json:"balance"`
}

// Transaction is one rendered history record. Counterparty is null for
// deposits and withdrawals.
type Transaction struct {
	Type         string  `json:"type"`
	Amount       string  `json:"amount"`
	Counterparty *string `json:"counterparty"`
	CreatedAt    string  `json:"created_at"`
}

// TransactionList wraps a newest-first history listing.
type TransactionList struct {
	Items []Transaction `json:"items"`
}

// Error is the uniform error body.
type Error struct {
	Error string `json:"error"`
}

// OK is the uniform success body for mutations.
type OK struct {
	OK bool `json:"ok"`
}
