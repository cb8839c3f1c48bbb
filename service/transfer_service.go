package service

import (
	"context"
	"errors"
	"fmt"

	"bank-transfer-api/logger"
	"bank-transfer-api/model"
	"bank-transfer-api/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrSameAccountTransfer = errors.New("cannot transfer money to the same account")
	ErrInvalidAmount       = errors.New("transfer amount must be greater than zero")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
)

// TransferService moves funds between two ledger accounts. It owns the
// per-account locks: while a transfer holds the pair, no other transfer can
// read-modify-write either balance, which rules out lost updates and
// double-spends. The ledger's ApplyPair then commits both sides atomically,
// so readers never see a half-applied transfer either.
type TransferService struct {
	ledger repository.ILedger
	locker *accountLocker
}

func NewTransferService(ledger repository.ILedger) *TransferService {
	return &TransferService{
		ledger: ledger,
		locker: newAccountLocker(),
	}
}

// Transfer applies req against the ledger and returns both post-transfer
// snapshots, or exactly one of the sentinel errors above. A failed transfer
// changes nothing; there is no partial application to roll back.
func (s *TransferService) Transfer(ctx context.Context, req model.TransferRequest) (*model.TransferResult, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"sender_account":   req.SenderAccount,
		"receiver_account": req.ReceiverAccount,
		"amount":           req.Amount,
	})
	log.Info("Starting money transfer process")

	// The boundary validates format; re-check the parts the engine's own
	// correctness depends on.
	if req.SenderAccount == "" || req.ReceiverAccount == "" {
		return nil, ErrAccountNotFound
	}
	if req.SenderAccount == req.ReceiverAccount {
		return nil, ErrSameAccountTransfer
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	unlock := s.locker.lockPair(req.SenderAccount, req.ReceiverAccount)
	defer unlock()

	sender, err := s.ledger.GetAccount(ctx, req.SenderAccount)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("could not read sender account: %w", err)
	}
	if sender.Balance.LessThan(req.Amount) {
		log.Info("Transfer rejected: insufficient funds")
		return nil, ErrInsufficientFunds
	}

	// Receiver existence is validated inside the atomic apply, not as a
	// separate pre-check that could race with account creation.
	debited, credited, err := s.ledger.ApplyPair(ctx, req.SenderAccount, req.Amount, req.ReceiverAccount, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, repository.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		default:
			return nil, fmt.Errorf("could not apply transfer: %w", err)
		}
	}

	log.Info("Transfer completed successfully")
	return &model.TransferResult{Sender: debited, Receiver: credited}, nil
}
