// Package auth carries the registration and session endpoints. These are
// boundary glue around the ledger: the only ledger write they perform is
// creating the zero-balance account at registration time.
package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/chris/bank-ledger/pkg/api"
	"github.com/chris/bank-ledger/pkg/models"
	"github.com/chris/bank-ledger/pkg/money"
	"github.com/chris/bank-ledger/pkg/session"
	"github.com/chris/bank-ledger/pkg/storage"
	"github.com/chris/bank-ledger/pkg/users"
)

// Registry is the slice of the user store the auth handlers need.
type Registry interface {
	Register(username, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
}

// AuthHandler holds the dependencies for auth-related handlers.
type AuthHandler struct {
	Users    Registry
	Ledger   storage.LedgerStore
	Sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(reg Registry, ledger storage.LedgerStore, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Users: reg, Ledger: ledger, Sessions: sessions}
}

// Register handles POST /api/register: creates the user, its zero-balance
// account, and starts a session.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := h.Users.Register(username, creds.Password)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			writeError(w, http.StatusConflict, "username taken")
		} else {
			writeError(w, http.StatusInternalServerError, "failed to register")
		}
		return
	}

	if err := h.Ledger.CreateAccount(r.Context(), user.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	h.startSession(w, user)
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Users.Authenticate(strings.TrimSpace(creds.Username), creds.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		} else {
			writeError(w, http.StatusInternalServerError, "failed to log in")
		}
		return
	}

	h.startSession(w, user)
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearCookie(w)
	writeJSON(w, http.StatusOK, api.OK{OK: true})
}

// Me handles GET /api/me, returning the caller's username and formatted
// balance.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	balance, err := h.Ledger.Balance(r.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "account not found")
		} else {
			writeError(w, http.StatusInternalServerError, "failed to read balance")
		}
		return
	}

	writeJSON(w, http.StatusOK, api.Me{
		Username: ident.Username,
		Balance:  money.FromCents(balance),
	})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, user *models.User) {
	token, err := h.Sessions.Issue(session.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return
	}
	h.Sessions.SetCookie(w, token)
	writeJSON(w, http.StatusOK, api.OK{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.Error{Error: msg})
}
