package handler

import (
	"encoding/json"
	"net/http"

	"bank-transfer-api/common"
	"bank-transfer-api/model"
	"bank-transfer-api/service"
)

// TransferHandler holds dependencies for transfer-related handlers.
type TransferHandler struct {
	transfers *service.TransferService
	accounts  *service.AccountService
}

// NewTransferHandler creates a new TransferHandler with its dependencies.
func NewTransferHandler(transfers *service.TransferService, accounts *service.AccountService) *TransferHandler {
	return &TransferHandler{transfers: transfers, accounts: accounts}
}

// CreateTransfer godoc
// @Summary      Transfer money between accounts
// @Description  Moves the specified amount from the sender account to the receiver account.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        transfer body model.TransferRequest true "Details of the financial transfer"
// @Success      200  {object}  model.TransferResult
// @Failure      400  {object}  common.AppError "Invalid amount or self transfer"
// @Failure      404  {object}  common.AppError "Sender or receiver account not found"
// @Failure      422  {object}  common.AppError "Insufficient funds"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /api/transfers [post]
func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	result, err := h.transfers.Transfer(r.Context(), req)
	if err != nil {
		// Map each engine failure kind to its own status so callers can tell
		// them apart.
		switch err {
		case service.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case service.ErrInsufficientFunds:
			return common.NewAppError(http.StatusUnprocessableEntity, err.Error(), err)
		case service.ErrSameAccountTransfer, service.ErrInvalidAmount:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process transfer", err)
		}
	}

	h.accounts.InvalidateListCache(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
	return nil
}
