package routes_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/domain/port/usecase"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/auth"
	usecasemocks "github.com/logifin/wallet-ledger/mocks/port/usecase"
)

var now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

type logLine struct {
	level   string
	message string
	fields  map[string]any
}

// recordingLogger keeps every entry so tests can look for handler diagnostics
type recordingLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (r *recordingLogger) add(level, message string, fields map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, logLine{level: level, message: message, fields: fields})
}

func (r *recordingLogger) find(message string) (logLine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if l.message == message {
			return l, true
		}
	}
	return logLine{}, false
}

func (r *recordingLogger) SetLevel(coreport.LogLevel) {}
func (r *recordingLogger) GetLevel() coreport.LogLevel { return coreport.LogLevelDebug }
func (r *recordingLogger) With(map[string]any) coreport.Logger { return r }
func (r *recordingLogger) Debug(message string, fields map[string]any) { r.add("debug", message, fields) }
func (r *recordingLogger) Info(message string, fields map[string]any) { r.add("info", message, fields) }
func (r *recordingLogger) Warn(message string, fields map[string]any) { r.add("warn", message, fields) }
func (r *recordingLogger) Error(message string, fields map[string]any) { r.add("error", message, fields) }
func (r *recordingLogger) Flush() error { return nil }

type fixture struct {
	logs     *recordingLogger
	router   *gin.Engine
	wallets  *usecasemocks.MockWalletUseCase
	history  *usecasemocks.MockHistoryUseCase
	verifier *auth.Verifier
}

func newFixture(t *testing.T, withAuth bool) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		logs:     &recordingLogger{},
		wallets:  usecasemocks.NewMockWalletUseCase(t),
		history:  usecasemocks.NewMockHistoryUseCase(t),
		verifier: auth.NewVerifier("test-secret", "wallet-ledger"),
	}

	opts := routes.Options{
		Logger:             f.logs,
		WalletHandler:      handler.NewWalletHandler(f.wallets, f.logs),
		TransactionHandler: handler.NewTransactionHandler(f.history, f.logs),
		Health:             func(context.Context) error { return nil },
	}
	if withAuth {
		opts.Verifier = f.verifier
	}
	f.router = routes.NewRouter(opts)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string, actor *entity.Actor) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if actor != nil {
		token, err := f.verifier.Issue(*actor, time.Hour, time.Now())
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func sampleWallet(userID, balance string) *entity.Wallet {
	w, _ := entity.NewWallet(userID, entity.MustMoney(balance), now)
	return w
}

func sampleResult(userID, balance string) *usecase.MovementResult {
	w := sampleWallet(userID, balance)
	txn, _ := entity.NewTransaction("txn-01", userID, entity.EntryDraft{
		Type:         entity.TypeCredit,
		Category:     entity.CategoryPayment,
		Amount:       entity.MustMoney("1000"),
		Description:  "Added ₹1000.00 to wallet",
		BalanceAfter: w.Balance,
	}, now)
	return &usecase.MovementResult{Wallet: w, Transaction: txn}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	dec := json.NewDecoder(rec.Body)
	dec.UseNumber()
	require.NoError(t, dec.Decode(&body))
	return body
}

func TestGetWallet(t *testing.T) {
	f := newFixture(t, false)
	f.wallets.EXPECT().GetOrCreateWallet(mock.Anything, "user-1").Return(sampleWallet("user-1", "500000"), nil).Once()

	rec := f.do(t, http.MethodGet, "/wallets/user-1", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	body := decodeJSON(t, rec)
	assert.Equal(t, "user-1", body["user_id"])
	assert.Equal(t, json.Number("500000.00"), body["balance"])
	assert.Equal(t, json.Number("0.00"), body["escrowed_amount"])
}

func TestAddMoney_AcceptsNumbersAndStrings(t *testing.T) {
	f := newFixture(t, false)
	f.wallets.EXPECT().
		AddMoney(mock.Anything, "user-1", mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("1000.10")) })).
		Return(sampleResult("user-1", "501000.10"), nil).Twice()

	for _, body := range []string{`{"amount": 1000.10}`, `{"amount": "1000.10"}`} {
		rec := f.do(t, http.MethodPost, "/wallets/user-1/add-money", body, nil)
		require.Equal(t, http.StatusOK, rec.Code, body)

		resp := decodeJSON(t, rec)
		assert.Equal(t, json.Number("501000.10"), resp["balance"])
		txn := resp["transaction"].(map[string]any)
		assert.Equal(t, "txn-01", txn["id"])
		assert.Equal(t, "credit", txn["type"])
	}
}

func TestMovements_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   int
	}{
		{"insufficient balance", errs.NewOperationError("withdraw", "user-1", "600000.00",
			errs.NewInsufficientFundsError("user-1", "balance", "600000.00", "500000.00")), http.StatusUnprocessableEntity, errs.CodeInsufficientFunds},
		{"invalid amount", errs.ErrInvalidAmount, http.StatusBadRequest, errs.CodeInvalidAmount},
		{"busy", errs.ErrWalletBusy, http.StatusConflict, errs.CodeWalletBusy},
		{"store down", errs.ErrStoreUnavailable, http.StatusServiceUnavailable, errs.CodeStoreUnavailable},
		{"caller gone", fmt.Errorf("%w: %w", errs.ErrCanceled, context.Canceled), http.StatusRequestTimeout, errs.CodeCanceled},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, errs.CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			f.wallets.EXPECT().Withdraw(mock.Anything, "user-1", mock.Anything).Return(nil, tt.err).Once()

			rec := f.do(t, http.MethodPost, "/wallets/user-1/withdraw", `{"amount": 600000}`, nil)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeJSON(t, rec)
			assert.Equal(t, json.Number(strconv.Itoa(tt.code)), body["code"])
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", body["message"])
			}
		})
	}
}

func TestMovements_MalformedBody(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(t, http.MethodPost, "/wallets/user-1/escrow", `{"amount": "ten"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/wallets/user-1/escrow", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	line, ok := f.logs.find("Invalid request body")
	require.True(t, ok)
	assert.Equal(t, "warn", line.level)
	assert.Equal(t, "/wallets/:userId/escrow", line.fields["path"])
	assert.NotEmpty(t, line.fields["request_id"])
}

func TestInvestAndReturn(t *testing.T) {
	f := newFixture(t, false)
	f.wallets.EXPECT().
		Invest(mock.Anything, "user-1", mock.Anything, "trip-9").
		Return(sampleResult("user-1", "499000"), nil).Once()
	f.wallets.EXPECT().
		ReturnInvestment(mock.Anything, "user-1",
			mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(2000)) }),
			mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(300)) })).
		Return(sampleResult("user-1", "501300"), nil).Once()

	rec := f.do(t, http.MethodPost, "/wallets/user-1/invest", `{"amount": 2000, "tripId": "trip-9"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/wallets/user-1/return", `{"principal": 2000, "returns": 300}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, json.Number("501300.00"), decodeJSON(t, rec)["balance"])
}

func TestUpdateWallet_PassesPartialDelta(t *testing.T) {
	f := newFixture(t, false)
	f.wallets.EXPECT().
		AdminUpdate(mock.Anything, middleware.AnonymousActor, "user-1", mock.MatchedBy(func(d entity.WalletDelta) bool {
			return d.LockedAmount != nil && d.LockedAmount.Equal(entity.MustMoney("250")) &&
				d.Balance == nil && d.EscrowedAmount == nil
		})).
		Return(sampleWallet("user-1", "500000"), nil).Once()

	rec := f.do(t, http.MethodPut, "/wallets/user-1", `{"locked_amount": 250}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth(t *testing.T) {
	f := newFixture(t, true)
	alice := entity.Actor{ID: "alice"}

	rec := f.do(t, http.MethodGet, "/wallets/alice", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/wallets/bob", "", &alice)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	denied, ok := f.logs.find("Wallet access denied")
	require.True(t, ok)
	assert.Equal(t, "alice", denied.fields["actor_id"])
	assert.Equal(t, "bob", denied.fields["user_id"])

	f.wallets.EXPECT().GetOrCreateWallet(mock.Anything, "alice").Return(sampleWallet("alice", "500000"), nil).Once()
	rec = f.do(t, http.MethodGet, "/wallets/alice", "", &alice)
	assert.Equal(t, http.StatusOK, rec.Code)

	// health stays public
	rec = f.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransactions(t *testing.T) {
	f := newFixture(t, true)
	alice := entity.Actor{ID: "alice"}
	admin := entity.Actor{ID: "ops", Role: entity.RoleSuperAdmin}
	entry := sampleResult("alice", "501000").Transaction

	f.history.EXPECT().GetTransaction(mock.Anything, "txn-01").Return(entry, nil).Twice()
	rec := f.do(t, http.MethodGet, "/transactions/txn-01", "", &alice)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, json.Number("1000.00"), body["amount"])
	assert.Equal(t, json.Number("501000.00"), body["balance_after"])

	// other users' entries look missing
	bob := entity.Actor{ID: "bob"}
	rec = f.do(t, http.MethodGet, "/transactions/txn-01", "", &bob)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	_, ok := f.logs.find("Transaction lookup for another user's entry")
	assert.True(t, ok)

	f.history.EXPECT().
		ListUserTransactions(mock.Anything, "alice", entity.TransactionFilter{Type: entity.TypeCredit, Limit: 5}).
		Return([]*entity.Transaction{entry}, nil).Once()
	rec = f.do(t, http.MethodGet, "/transactions/user/alice?type=credit&limit=5", "", &alice)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	f.history.EXPECT().
		ListAllTransactions(mock.Anything, alice, entity.TransactionFilter{}).
		Return(nil, errs.ErrForbidden).Once()
	rec = f.do(t, http.MethodGet, "/transactions", "", &alice)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.history.EXPECT().
		ListAllTransactions(mock.Anything, admin, entity.TransactionFilter{}).
		Return([]*entity.Transaction{}, nil).Once()
	rec = f.do(t, http.MethodGet, "/transactions", "", &admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
