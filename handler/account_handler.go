package handler

import (
	"encoding/json"
	"net/http"

	"bank-transfer-api/common"
	"bank-transfer-api/logger"
	"bank-transfer-api/service"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// ListAccounts godoc
// @Summary      List all bank accounts
// @Produce      json
// @Success      200  {array}   model.Account
// @Failure      500  {object}  common.AppError
// @Router       /api/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	logger.Log.Info("List accounts request received")

	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve accounts", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(accounts)
	return nil
}

// GetAccount godoc
// @Summary      Get one bank account by account number
// @Produce      json
// @Param        accountNumber path string true "12-digit account number"
// @Success      200  {object}  model.Account
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError
// @Router       /api/accounts/{accountNumber} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber := r.PathValue("accountNumber")
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Get account request received")

	account, err := h.service.GetAccount(r.Context(), accountNumber)
	if err != nil {
		if err == service.ErrAccountNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve account", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}
