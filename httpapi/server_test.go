package httpapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kwanzabet/config"
	"kwanzabet/events"
	"kwanzabet/httpapi"
	"kwanzabet/repository"
	"kwanzabet/rng"
	"kwanzabet/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler http.Handler
}

func newTestServer(provider rng.Provider) *testServer {
	cfg := config.NewTestConfig()
	bus := events.NewBus()
	accountStore := repository.NewAccountStore()
	betLog := repository.NewBetLog()
	transactionLog := repository.NewTransactionLog()

	server := httpapi.NewServer(
		cfg,
		service.NewAccountService(accountStore, transactionLog, bus, cfg),
		service.NewWagerService(accountStore, betLog, provider, bus, cfg),
		service.NewWalletService(accountStore, transactionLog, bus, cfg),
		service.NewTransferService(accountStore, transactionLog, bus),
		service.NewStatsService(accountStore),
	)
	return &testServer{handler: server.Handler()}
}

func (ts *testServer) do(t *testing.T, method, path, accountID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if accountID != "" {
		req.Header.Set("X-Account-ID", accountID)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) register(t *testing.T) string {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/accounts", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var account struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &account))
	require.NotEmpty(t, account.ID)
	return account.ID
}

func (ts *testServer) deposit(t *testing.T, accountID string, amount int64) {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/deposits", accountID, map[string]any{"amount": amount})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(rng.New())
	rec := ts.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(rng.New())
	accountID := ts.register(t)

	rec := ts.do(t, http.MethodGet, "/account", accountID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/account", accountID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Mutations against a deactivated account are forbidden.
	rec = ts.do(t, http.MethodPost, "/deposits", accountID, map[string]any{"amount": 1000})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMissingAccountHeader(t *testing.T) {
	ts := newTestServer(rng.New())
	rec := ts.do(t, http.MethodGet, "/bets", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPlaceBetOverHTTP(t *testing.T) {
	// Scripted win: the wheel lands on segment 6 (x5 multiplier).
	ts := newTestServer(rng.Script(6))
	accountID := ts.register(t)
	ts.deposit(t, accountID, 1000)

	rec := ts.do(t, http.MethodPost, "/bets", accountID, map[string]any{
		"game":  "wheel",
		"stake": 500,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Won        bool  `json:"won"`
		Prize      int64 `json:"prize"`
		NewBalance int64 `json:"new_balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Won)
	assert.Equal(t, int64(2500), result.Prize)
	assert.Equal(t, int64(3000), result.NewBalance)

	rec = ts.do(t, http.MethodGet, "/bets", accountID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Bets []json.RawMessage `json:"bets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Len(t, history.Bets, 1)
}

func TestBetErrorMapping(t *testing.T) {
	ts := newTestServer(rng.New())
	accountID := ts.register(t)
	ts.deposit(t, accountID, 1000)

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name:       "unknown game",
			body:       map[string]any{"game": "roulette", "stake": 100},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "stake below minimum",
			body:       map[string]any{"game": "coin", "stake": 50, "choice": "heads"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "number out of range",
			body:       map[string]any{"game": "numbers", "stake": 100, "selected_number": 99},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "insufficient balance",
			body:       map[string]any{"game": "coin", "stake": 100000, "choice": "heads"},
			wantStatus: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/bets", accountID, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("unknown account", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/bets", "nobody", map[string]any{"game": "coin", "stake": 100, "choice": "heads"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWalletOverHTTP(t *testing.T) {
	ts := newTestServer(rng.New())
	accountID := ts.register(t)

	t.Run("deposit below minimum", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/deposits", accountID, map[string]any{"amount": 500})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	ts.deposit(t, accountID, 5000)

	t.Run("withdrawal without destination", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/withdrawals", accountID, map[string]any{"amount": 1000})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("withdrawal succeeds", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/withdrawals", accountID, map[string]any{
			"amount":      2000,
			"destination": map[string]any{"provider": "multicaixa", "reference": "923000111"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			NewBalance int64 `json:"new_balance"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, int64(3000), result.NewBalance)
	})

	t.Run("transaction history", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/transactions", accountID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var history struct {
			Transactions []json.RawMessage `json:"transactions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
		assert.Len(t, history.Transactions, 2)
	})
}

func TestTransferAndScoreboardOverHTTP(t *testing.T) {
	ts := newTestServer(rng.New())
	sender := ts.register(t)
	recipient := ts.register(t)
	ts.deposit(t, sender, 5000)

	rec := ts.do(t, http.MethodPost, "/transfers", sender, map[string]any{
		"to_account_id": recipient,
		"amount":        2000,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, fmt.Sprintf("/scoreboard?limit=%d", 10), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board struct {
		Scoreboard []struct {
			AccountID string `json:"account_id"`
			Balance   int64  `json:"balance"`
		} `json:"scoreboard"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	require.Len(t, board.Scoreboard, 2)
	assert.Equal(t, sender, board.Scoreboard[0].AccountID)
	assert.Equal(t, int64(3000), board.Scoreboard[0].Balance)
}
