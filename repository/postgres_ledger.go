package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bank-transfer-api/logger"
	"bank-transfer-api/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PostgresLedger stores accounts in postgres. ApplyPair runs inside a single
// database transaction and always locks the two rows in account-number order,
// the same total order the engine uses, so ledger-level row locks can never
// form a cycle with each other.
type PostgresLedger struct {
	DB *sql.DB
}

func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{DB: db}
}

func (l *PostgresLedger) GetAccount(ctx context.Context, accountNumber string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)

	account := &model.Account{}
	query := `SELECT id, account_number, account_name, balance, type, created_at FROM accounts WHERE account_number = $1`
	err := l.DB.QueryRowContext(ctx, query, accountNumber).
		Scan(&account.ID, &account.AccountNumber, &account.AccountName, &account.Balance, &account.Type, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		log.WithError(err).Error("Failed to execute get account query")
		return nil, err
	}
	return account, nil
}

func (l *PostgresLedger) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	query := `SELECT id, account_number, account_name, balance, type, created_at FROM accounts ORDER BY account_number`
	rows, err := l.DB.QueryContext(ctx, query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all accounts")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.AccountNumber, &acc.AccountName, &acc.Balance, &acc.Type, &acc.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	return accounts, rows.Err()
}

func (l *PostgresLedger) CreateAccount(ctx context.Context, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": account.AccountNumber,
		"type":           account.Type,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (account_number, account_name, balance, type) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := l.DB.QueryRowContext(ctx, query, account.AccountNumber, account.AccountName, account.Balance, account.Type).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

// ApplyPair locks both rows, validates, and commits the debit and credit plus
// an audit row as one transaction. The deferred rollback is a no-op once the
// commit succeeds, and undoes everything on any earlier return.
func (l *PostgresLedger) ApplyPair(ctx context.Context, debitAccount string, debit decimal.Decimal, creditAccount string, credit decimal.Decimal) (*model.Account, *model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"debit_account":  debitAccount,
		"credit_account": creditAccount,
	})

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock rows in account-number order regardless of transfer direction.
	first, second := debitAccount, creditAccount
	if second < first {
		first, second = second, first
	}

	locked := make(map[string]*model.Account, 2)
	for _, number := range []string{first, second} {
		acc, err := l.getForUpdate(tx, number)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, nil, ErrAccountNotFound
			}
			log.WithError(err).Error("Failed to lock account row")
			return nil, nil, err
		}
		locked[number] = acc
	}

	from := locked[debitAccount]
	to := locked[creditAccount]
	if from.Balance.LessThan(debit) {
		return nil, nil, ErrInsufficientFunds
	}

	from.Balance = from.Balance.Sub(debit)
	to.Balance = to.Balance.Add(credit)

	for _, acc := range []*model.Account{from, to} {
		if _, err := tx.Exec(`UPDATE accounts SET balance = $1 WHERE account_number = $2`, acc.Balance, acc.AccountNumber); err != nil {
			log.WithError(err).Error("Failed to execute update account balance query")
			return nil, nil, err
		}
	}

	if _, err := tx.Exec(`INSERT INTO transfers (sender_account, receiver_account, amount) VALUES ($1, $2, $3)`,
		debitAccount, creditAccount, debit); err != nil {
		log.WithError(err).Error("Failed to record transfer")
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("could not commit transaction: %w", err)
	}
	return from, to, nil
}

func (l *PostgresLedger) getForUpdate(tx *sql.Tx, accountNumber string) (*model.Account, error) {
	account := &model.Account{}
	query := `SELECT id, account_number, account_name, balance, type, created_at FROM accounts WHERE account_number = $1 FOR UPDATE`
	err := tx.QueryRow(query, accountNumber).
		Scan(&account.ID, &account.AccountNumber, &account.AccountName, &account.Balance, &account.Type, &account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return account, nil
}
