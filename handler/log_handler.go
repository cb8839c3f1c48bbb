package handler

import (
	"encoding/json"
	"net/http"

	"bank-transfer-api/common"
	"bank-transfer-api/logger"
	"bank-transfer-api/model"
)

// LogMessage godoc
// @Summary      Log a client-supplied message
// @Description  Writes the supplied message into the service log. Pass-through endpoint; touches no account state.
// @Accept       json
// @Produce      json
// @Param        message body model.LogMessageRequest true "Message to log"
// @Success      202  {object}  map[string]string
// @Failure      400  {object}  common.AppError
// @Router       /api/logmessage [post]
func LogMessage(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LogMessageRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	logger.Log.WithField("source", "client").Info(req.Message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"status": "logged"})
	return nil
}
