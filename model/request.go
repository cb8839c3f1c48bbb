// file: model/request.go

package model

import "github.com/shopspring/decimal"

// TransferRequest defines the payload for moving funds between two accounts.
// Account numbers are 12-digit strings; the amount must be strictly positive.
// The validator sees decimal amounts as floats via the custom type func
// registered in common, so gt=0 applies to Amount.
type TransferRequest struct {
	SenderAccount   string          `json:"senderAccount" validate:"required,len=12,number"`
	ReceiverAccount string          `json:"receiverAccount" validate:"required,len=12,number"`
	Amount          decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// LogMessageRequest defines the payload for the log pass-through endpoint.
type LogMessageRequest struct {
	Message string `json:"logmsg" validate:"required,max=1024"`
}
