package router

import (
	"net/http"

	"bank-transfer-api/handler"
)

func NewRouter(accountHandler *handler.AccountHandler, transferHandler *handler.TransferHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.Handle("GET /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.ListAccounts))
	mux.Handle("GET /api/accounts/{accountNumber}", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))
	mux.Handle("POST /api/transfers", handler.ErrorHandlingMiddleware(transferHandler.CreateTransfer))
	mux.Handle("POST /api/logmessage", handler.ErrorHandlingMiddleware(handler.LogMessage))

	return mux
}
