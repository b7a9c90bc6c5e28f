// Package handlers assembles the HTTP surface: the middleware chain, the
// public auth routes and the authenticated ledger routes.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/chris/bank-ledger/pkg/handlers/auth"
	"github.com/chris/bank-ledger/pkg/handlers/ledger"
	"github.com/chris/bank-ledger/pkg/middleware"
	"github.com/chris/bank-ledger/pkg/session"
	"github.com/chris/bank-ledger/pkg/storage"
)

// Deps carries everything the router needs. Handlers receive their
// dependencies here rather than reaching for globals.
type Deps struct {
	Users    auth.Registry
	Ledger   storage.LedgerStore
	Sessions *session.Manager
	Logger   *slog.Logger
}

// NewRouter wires the full HTTP surface onto a chi router.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewStructuredLogger(d.Logger))

	authHandler := auth.NewAuthHandler(d.Users, d.Ledger, d.Sessions)
	ledgerHandler := ledger.NewLedgerHandler(d.Ledger)

	r.Get("/api/health", health)
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/logout", authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(d.Sessions.RequireAuth)
		r.Get("/api/me", authHandler.Me)
		r.Post("/api/deposit", ledgerHandler.Deposit)
		r.Post("/api/withdraw", ledgerHandler.Withdraw)
		r.Post("/api/transfer", ledgerHandler.Transfer)
		r.Get("/api/transactions", ledgerHandler.Transactions)
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
