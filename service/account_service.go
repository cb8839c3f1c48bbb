// file: service/account_service.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bank-transfer-api/model"
	"bank-transfer-api/repository"
)

const accountListCacheKey = "accounts:all"

// AccountService serves the read side: account listing and lookup by number.
// When a cache client is present it applies a cache-aside strategy to the
// listing; lookups always hit the ledger so a read issued after a transfer
// reflects that transfer.
type AccountService struct {
	ledger repository.ILedger
	cache  ICacheClient
}

// NewAccountService creates the service. cache may be nil, in which case
// every read goes to the ledger.
func NewAccountService(ledger repository.ILedger, cache ICacheClient) *AccountService {
	return &AccountService{
		ledger: ledger,
		cache:  cache,
	}
}

// ListAccounts lists every account, utilizing a cache-aside strategy.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, accountListCacheKey).Result()
		if err == nil {
			var accounts []*model.Account
			if err := json.Unmarshal([]byte(cached), &accounts); err == nil {
				return accounts, nil
			}
		}
	}

	accounts, err := s.ledger.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(accounts); err == nil {
			s.cache.Set(ctx, accountListCacheKey, data, 10*time.Minute)
		}
	}

	return accounts, nil
}

// GetAccount returns the current snapshot of one account.
func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (*model.Account, error) {
	account, err := s.ledger.GetAccount(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// InvalidateListCache drops the cached account listing. Called after every
// successful transfer so the listing never serves stale balances for longer
// than one request.
func (s *AccountService) InvalidateListCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Del(ctx, accountListCacheKey)
	}
}

// SeedAccounts loads the configured accounts into the ledger, skipping any
// account number that already exists so restarts are safe.
func (s *AccountService) SeedAccounts(ctx context.Context, accounts []*model.Account) error {
	for _, acc := range accounts {
		err := s.ledger.CreateAccount(ctx, acc)
		if err != nil && !errors.Is(err, repository.ErrDuplicateAccount) {
			return fmt.Errorf("could not seed account %s: %w", acc.AccountNumber, err)
		}
	}
	return nil
}
