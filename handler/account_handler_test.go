package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bank-transfer-api/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func TestListAccounts(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var accounts []*model.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accounts))
	require.Len(t, accounts, 2)
	assert.Equal(t, savingsAccount, accounts[0].AccountNumber)
	assert.Equal(t, checkingAccount, accounts[1].AccountNumber)
}

func TestGetAccount(t *testing.T) {
	mux, _ := newTestMux(t)

	t.Run("existing account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts/008596512563", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var account model.Account
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &account))
		assert.Equal(t, "John Doe", account.AccountName)
		assert.Equal(t, model.AccountTypeSavings, account.Type)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(52000)))
	})

	t.Run("unknown account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts/999999999999", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLogMessage(t *testing.T) {
	mux, _ := newTestMux(t)

	t.Run("logs and accepts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/logmessage", jsonBody(`{"logmsg":"client side event"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/logmessage", jsonBody(`{}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
