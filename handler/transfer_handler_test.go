package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bank-transfer-api/common"
	"bank-transfer-api/logger"
	"bank-transfer-api/model"
	"bank-transfer-api/repository"
	"bank-transfer-api/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const (
	savingsAccount  = "008596512563"
	checkingAccount = "008596558965"
)

// newTestMux wires the handlers over a freshly seeded memory ledger.
func newTestMux(t *testing.T) (*http.ServeMux, repository.ILedger) {
	t.Helper()
	ledger := repository.NewMemoryLedger()
	for _, acc := range []*model.Account{
		{AccountNumber: savingsAccount, AccountName: "John Doe", Balance: decimal.NewFromInt(52000), Type: model.AccountTypeSavings},
		{AccountNumber: checkingAccount, AccountName: "John Doe", Balance: decimal.NewFromInt(7500), Type: model.AccountTypeChecking},
	} {
		require.NoError(t, ledger.CreateAccount(context.Background(), acc))
	}

	accountService := service.NewAccountService(ledger, nil)
	transferService := service.NewTransferService(ledger)
	accountHandler := NewAccountHandler(accountService)
	transferHandler := NewTransferHandler(transferService, accountService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", HealthCheck)
	mux.Handle("GET /api/accounts", ErrorHandlingMiddleware(accountHandler.ListAccounts))
	mux.Handle("GET /api/accounts/{accountNumber}", ErrorHandlingMiddleware(accountHandler.GetAccount))
	mux.Handle("POST /api/transfers", ErrorHandlingMiddleware(transferHandler.CreateTransfer))
	mux.Handle("POST /api/logmessage", ErrorHandlingMiddleware(LogMessage))
	return mux, ledger
}

func postTransfer(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/transfers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateTransfer(t *testing.T) {
	t.Run("success returns both snapshots", func(t *testing.T) {
		mux, _ := newTestMux(t)
		rec := postTransfer(t, mux, `{"senderAccount":"008596512563","receiverAccount":"008596558965","amount":500.00}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var result model.TransferResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.NotNil(t, result.Sender)
		require.NotNil(t, result.Receiver)
		assert.Equal(t, savingsAccount, result.Sender.AccountNumber)
		assert.True(t, result.Sender.Balance.Equal(decimal.NewFromInt(51500)))
		assert.True(t, result.Receiver.Balance.Equal(decimal.NewFromInt(8000)))
	})

	t.Run("malformed account number fails validation before the ledger", func(t *testing.T) {
		mux, ledger := newTestMux(t)
		rec := postTransfer(t, mux, `{"senderAccount":"12345","receiverAccount":"008596558965","amount":100}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		acc, err := ledger.GetAccount(context.Background(), checkingAccount)
		require.NoError(t, err)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(7500)))
	})

	t.Run("non-numeric account number rejected", func(t *testing.T) {
		mux, _ := newTestMux(t)
		rec := postTransfer(t, mux, `{"senderAccount":"00859651256A","receiverAccount":"008596558965","amount":100}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing amount rejected", func(t *testing.T) {
		mux, _ := newTestMux(t)
		rec := postTransfer(t, mux, `{"senderAccount":"008596512563","receiverAccount":"008596558965"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		mux, _ := newTestMux(t)
		rec := postTransfer(t, mux, `{"senderAccount":"008596512563","receiverAccount":"008596558965","amount":-10}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("self transfer rejected", func(t *testing.T) {
		mux, _ := newTestMux(t)
		rec := postTransfer(t, mux, `{"senderAccount":"008596512563","receiverAccount":"008596512563","amount":100}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var appErr common.AppError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
		assert.Contains(t, appErr.Message, "same account")
	})

	t.Run("unknown receiver returns 404", func(t *testing.T) {
		mux, ledger := newTestMux(t)
		rec := postTransfer(t, mux, `{"senderAccount":"008596512563","receiverAccount":"999999999999","amount":100}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		acc, err := ledger.GetAccount(context.Background(), savingsAccount)
		require.NoError(t, err)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(52000)))
	})

	t.Run("insufficient funds returns 422 and balances stay put", func(t *testing.T) {
		mux, ledger := newTestMux(t)
		rec := postTransfer(t, mux, `{"senderAccount":"008596512563","receiverAccount":"008596558965","amount":100000}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var appErr common.AppError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
		assert.Contains(t, appErr.Message, "insufficient funds")

		acc, err := ledger.GetAccount(context.Background(), savingsAccount)
		require.NoError(t, err)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(52000)))
	})

	t.Run("invalid body rejected", func(t *testing.T) {
		mux, _ := newTestMux(t)
		rec := postTransfer(t, mux, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
