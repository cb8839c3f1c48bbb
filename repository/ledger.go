package repository

import (
	"context"
	"errors"

	"bank-transfer-api/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when an account number does not resolve
	// to an existing account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when a debit would drive a balance
	// below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDuplicateAccount is returned when creating an account whose number
	// is already taken.
	ErrDuplicateAccount = errors.New("account number already exists")
)

// ILedger is the authoritative store of account balances. It is the only
// component allowed to mutate a balance, and the only mutation it offers is
// the atomic pair-apply: a debit and a credit that commit together or not at
// all. Reads never observe one half of a pair without the other.
type ILedger interface {
	// GetAccount returns a snapshot of one account, or ErrAccountNotFound.
	GetAccount(ctx context.Context, accountNumber string) (*model.Account, error)

	// ListAccounts returns snapshots of every account.
	ListAccounts(ctx context.Context) ([]*model.Account, error)

	// CreateAccount registers a new account. Used by seeding; transfers never
	// create accounts.
	CreateAccount(ctx context.Context, account *model.Account) error

	// ApplyPair atomically decreases debitAccount's balance by debit and
	// increases creditAccount's balance by credit. Both accounts must exist
	// and the debit account must hold at least the debit amount; otherwise
	// nothing changes and ErrAccountNotFound or ErrInsufficientFunds is
	// returned. On success the post-apply snapshots are returned in
	// (debit, credit) order.
	ApplyPair(ctx context.Context, debitAccount string, debit decimal.Decimal, creditAccount string, credit decimal.Decimal) (*model.Account, *model.Account, error)
}
