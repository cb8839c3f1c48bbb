package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the closed classification of an account. It is informational
// only; transfer rules do not depend on it.
type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
)

// Account is a snapshot of one bank account. AccountNumber is an opaque key:
// it is compared as a string everywhere so leading zeros survive and no
// numeric overflow is possible.
type Account struct {
	ID            int64           `json:"id"`
	AccountNumber string          `json:"account_number"`
	AccountName   string          `json:"account_name"`
	Balance       decimal.Decimal `json:"balance"`
	Type          AccountType     `json:"type"`
	CreatedAt     time.Time       `json:"created_at"`
}
