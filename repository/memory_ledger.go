package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"bank-transfer-api/model"

	"github.com/shopspring/decimal"
)

// MemoryLedger keeps all accounts in an in-process map. Every accessor hands
// out copies, never internal pointers, so callers cannot mutate a balance
// behind the ledger's back. The mutex guards only the map and the balance
// fields; it is held for the duration of a single read or pair-apply, nothing
// longer. Serialization of competing transfers happens above the ledger, in
// the engine's per-account locks.
type MemoryLedger struct {
	mu     sync.RWMutex
	nextID int64
	accts  map[string]*model.Account
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{accts: make(map[string]*model.Account)}
}

func (l *MemoryLedger) GetAccount(ctx context.Context, accountNumber string) (*model.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accts[accountNumber]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (l *MemoryLedger) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*model.Account, 0, len(l.accts))
	for _, a := range l.accts {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountNumber < out[j].AccountNumber })
	return out, nil
}

func (l *MemoryLedger) CreateAccount(ctx context.Context, account *model.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accts[account.AccountNumber]; ok {
		return ErrDuplicateAccount
	}
	l.nextID++
	cp := *account
	cp.ID = l.nextID
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	l.accts[cp.AccountNumber] = &cp
	account.ID = cp.ID
	account.CreatedAt = cp.CreatedAt
	return nil
}

// ApplyPair commits the debit and the credit inside one critical section, so
// no concurrent read can observe a debited-but-not-credited state. All checks
// run before either balance is touched; on any failure the map is unchanged.
func (l *MemoryLedger) ApplyPair(ctx context.Context, debitAccount string, debit decimal.Decimal, creditAccount string, credit decimal.Decimal) (*model.Account, *model.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	from, ok := l.accts[debitAccount]
	if !ok {
		return nil, nil, ErrAccountNotFound
	}
	to, ok := l.accts[creditAccount]
	if !ok {
		return nil, nil, ErrAccountNotFound
	}
	if from.Balance.LessThan(debit) {
		return nil, nil, ErrInsufficientFunds
	}

	from.Balance = from.Balance.Sub(debit)
	to.Balance = to.Balance.Add(credit)

	fromCp := *from
	toCp := *to
	return &fromCp, &toCp, nil
}
