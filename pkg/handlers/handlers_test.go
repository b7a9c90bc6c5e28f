package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/bank-ledger/pkg/api"
	"github.com/chris/bank-ledger/pkg/handlers"
	"github.com/chris/bank-ledger/pkg/session"
	"github.com/chris/bank-ledger/pkg/storage/memory"
	"github.com/chris/bank-ledger/pkg/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires real components behind the router, the same way
// cmd/app does.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	registry := users.New()
	store := memory.New(registry)
	sessions := session.NewManager([]byte("test-secret"), time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := httptest.NewServer(handlers.NewRouter(handlers.Deps{
		Users:    registry,
		Ledger:   store,
		Sessions: sessions,
		Logger:   logger,
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newClient returns a cookie-jarred client, one per simulated user.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, c *http.Client, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := c.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func register(t *testing.T, c *http.Client, base, username string) {
	t.Helper()
	resp := postJSON(t, c, base+"/api/register", api.Credentials{Username: username, Password: "hunter2"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func balance(t *testing.T, c *http.Client, base string) string {
	t.Helper()
	resp, err := c.Get(base + "/api/me")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[api.Me](t, resp).Balance
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/me")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// TestFullFlow walks a two-user deposit/transfer/withdraw session through
// the HTTP surface with real cookies.
func TestFullFlow(t *testing.T) {
	srv := newTestServer(t)

	alice := newClient(t)
	bob := newClient(t)
	register(t, alice, srv.URL, "alice")
	register(t, bob, srv.URL, "bob")

	// Fresh accounts start at zero.
	assert.Equal(t, "0.00", balance(t, alice, srv.URL))

	resp := postJSON(t, alice, srv.URL+"/api/deposit", api.AmountRequest{Amount: "100.00"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "100.00", balance(t, alice, srv.URL))

	resp = postJSON(t, alice, srv.URL+"/api/transfer", api.TransferRequest{ToUsername: "bob", Amount: "40.00"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "60.00", balance(t, alice, srv.URL))
	assert.Equal(t, "40.00", balance(t, bob, srv.URL))

	// Overdraw fails and leaves the balance alone.
	resp = postJSON(t, alice, srv.URL+"/api/withdraw", api.AmountRequest{Amount: "1000.00"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "60.00", balance(t, alice, srv.URL))

	// Self-transfer is rejected regardless of balance.
	resp = postJSON(t, alice, srv.URL+"/api/transfer", api.TransferRequest{ToUsername: "alice", Amount: "1.00"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown recipient.
	resp = postJSON(t, alice, srv.URL+"/api/transfer", api.TransferRequest{ToUsername: "mallory", Amount: "1.00"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Alice's history, newest first: transfer_out then deposit.
	listResp, err := alice.Get(srv.URL + "/api/transactions")
	require.NoError(t, err)
	list := decode[api.TransactionList](t, listResp)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "transfer_out", list.Items[0].Type)
	assert.Equal(t, "40.00", list.Items[0].Amount)
	require.NotNil(t, list.Items[0].Counterparty)
	assert.Equal(t, "bob", *list.Items[0].Counterparty)
	assert.Equal(t, "deposit", list.Items[1].Type)

	// Bob sees the matching transfer_in from alice.
	listResp, err = bob.Get(srv.URL + "/api/transactions")
	require.NoError(t, err)
	list = decode[api.TransactionList](t, listResp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "transfer_in", list.Items[0].Type)
	require.NotNil(t, list.Items[0].Counterparty)
	assert.Equal(t, "alice", *list.Items[0].Counterparty)
}

func TestListingLimit(t *testing.T) {
	srv := newTestServer(t)

	alice := newClient(t)
	register(t, alice, srv.URL, "alice")

	for _, amount := range []string{"1.00", "2.00", "3.00"} {
		resp := postJSON(t, alice, srv.URL+"/api/deposit", api.AmountRequest{Amount: amount})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := alice.Get(srv.URL + "/api/transactions?limit=2")
	require.NoError(t, err)
	list := decode[api.TransactionList](t, resp)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "3.00", list.Items[0].Amount)
	assert.Equal(t, "2.00", list.Items[1].Amount)
}

func TestLogoutEndsSession(t *testing.T) {
	srv := newTestServer(t)

	alice := newClient(t)
	register(t, alice, srv.URL, "alice")
	assert.Equal(t, "0.00", balance(t, alice, srv.URL))

	resp := postJSON(t, alice, srv.URL+"/api/logout", struct{}{})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	meResp, err := alice.Get(srv.URL + "/api/me")
	require.NoError(t, err)
	defer meResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, meResp.StatusCode)
}

func TestDuplicateRegistration(t *testing.T) {
	srv := newTestServer(t)

	alice := newClient(t)
	register(t, alice, srv.URL, "alice")

	other := newClient(t)
	resp := postJSON(t, other, srv.URL+"/api/register", api.Credentials{Username: "alice", Password: "other"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
