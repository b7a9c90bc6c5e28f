// Package ledger carries the authenticated money-movement endpoints.
// Amounts arrive as decimal strings, go through the money codec, and hit
// the store as minor units; domain errors map to HTTP statuses here.
package ledger

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/chris/bank-ledger/pkg/api"
	"github.com/chris/bank-ledger/pkg/mapping"
	"github.com/chris/bank-ledger/pkg/money"
	"github.com/chris/bank-ledger/pkg/session"
	"github.com/chris/bank-ledger/pkg/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// LedgerHandler holds the dependencies for ledger-related handlers.
type LedgerHandler struct {
	Store storage.LedgerStore
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(store storage.LedgerStore) *LedgerHandler {
	return &LedgerHandler{Store: store}
}

// Deposit handles POST /api/deposit.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	ident, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	cents, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	if err := h.Store.Deposit(r.Context(), ident.UserID, cents); err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "amount must be > 0")
		case errors.Is(err, storage.ErrNotFound):
			writeError(w, http.StatusNotFound, "account not found")
		default:
			writeError(w, http.StatusInternalServerError, "deposit failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, api.OK{OK: true})
}

// Withdraw handles POST /api/withdraw.
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ident, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	cents, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	if err := h.Store.Withdraw(r.Context(), ident.UserID, cents); err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "amount must be > 0")
		case errors.Is(err, storage.ErrInsufficientFunds):
			writeError(w, http.StatusBadRequest, "insufficient funds")
		case errors.Is(err, storage.ErrNotFound):
			writeError(w, http.StatusNotFound, "account not found")
		default:
			writeError(w, http.StatusInternalServerError, "withdraw failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, api.OK{OK: true})
}

// Transfer handles POST /api/transfer.
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	ident, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	var req api.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cents, err := money.ToCents(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be a decimal number")
		return
	}

	if err := h.Store.Transfer(r.Context(), ident.UserID, ident.Username, req.ToUsername, cents); err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "to_username and positive amount required")
		case errors.Is(err, storage.ErrSelfTransfer):
			writeError(w, http.StatusBadRequest, "cannot transfer to self")
		case errors.Is(err, storage.ErrInsufficientFunds):
			writeError(w, http.StatusBadRequest, "insufficient funds")
		case errors.Is(err, storage.ErrNotFound):
			writeError(w, http.StatusNotFound, "recipient not found")
		default:
			writeError(w, http.StatusInternalServerError, "transfer failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, api.OK{OK: true})
}

// Transactions handles GET /api/transactions.
func (h *LedgerHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	ident, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	limit := parseLimit(r.URL.Query().Get("limit"))

	recs, err := h.Store.ListTransactions(r.Context(), ident.UserID, limit)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "account not found")
		} else {
			writeError(w, http.StatusInternalServerError, "failed to list transactions")
		}
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiTransactionList(recs))
}

// decodeAmount reads an AmountRequest body and runs it through the money
// codec. On failure it writes the response itself and returns ok=false.
func decodeAmount(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var req api.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return 0, false
	}
	cents, err := money.ToCents(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be a decimal number")
		return 0, false
	}
	return cents, true
}

// parseLimit clamps the optional limit parameter to [1, 100], falling
// back to 10 when missing or unparsable.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return defaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.Error{Error: msg})
}
