// Package users is the account registry: it owns usernames, credentials
// and the monotonic ids the ledger keys accounts on. The ledger sees it
// only through the storage.AccountRegistry lookup.
package users

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chris/bank-ledger/pkg/models"
	"github.com/chris/bank-ledger/pkg/storage"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. Callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Store holds all registered users, keyed by username.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	byName map[string]*models.User
}

// New creates an empty user store. Ids start at 1.
func New() *Store {
	return &Store{nextID: 1, byName: make(map[string]*models.User)}
}

// Make sure we conform to the interface
var _ storage.AccountRegistry = (*Store)(nil)

// Register creates a user with a bcrypt-hashed password and a fresh id.
// Returns storage.ErrConflict if the username is taken.
func (s *Store) Register(username, password string) (*models.User, error) {
	// Hash outside the lock; bcrypt is deliberately slow.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[username]; ok {
		return nil, storage.ErrConflict
	}
	u := &models.User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	s.nextID++
	s.byName[username] = u

	cp := *u
	return &cp, nil
}

// Authenticate verifies a username/password pair and returns the user on
// success.
func (s *Store) Authenticate(username, password string) (*models.User, error) {
	s.mu.RLock()
	u, ok := s.byName[username]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	cp := *u
	return &cp, nil
}

// Resolve maps a username to its account id.
func (s *Store) Resolve(username string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byName[username]
	if !ok {
		return 0, false
	}
	return u.ID, true
}
