package service

import (
	"context"
	"fmt"

	"kwanzabet/events"
	"kwanzabet/models"

	log "github.com/sirupsen/logrus"
)

type transferService struct {
	accounts     AccountStore
	transactions TransactionLog
	publisher    EventPublisher
}

// NewTransferService creates a new transfer service
func NewTransferService(accounts AccountStore, transactions TransactionLog, publisher EventPublisher) TransferService {
	return &transferService{
		accounts:     accounts,
		transactions: transactions,
		publisher:    publisher,
	}
}

// Transfer moves amount from one account to another. The debit is the
// only step that can fail for business reasons, so it runs first; if
// the later credit fails the debit is compensated and the transfer
// reported as failed.
func (s *transferService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount int64) (*models.TransferResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("transfer amount must be positive, got %d", amount)
	}
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("cannot transfer to the same account")
	}

	recipient, err := s.accounts.Get(ctx, toAccountID)
	if err != nil {
		return nil, err
	}
	if !recipient.Active {
		return nil, fmt.Errorf("account %s: %w", toAccountID, models.ErrAccountInactive)
	}

	sender, err := s.accounts.ApplyDelta(ctx, fromAccountID, Delta{Stake: amount})
	if err != nil {
		return nil, err
	}

	if _, err := s.accounts.ApplyDelta(ctx, toAccountID, Delta{Credit: amount}); err != nil {
		// Recipient got deactivated between the check and the credit.
		// Hand the money back to the sender.
		if _, compErr := s.accounts.ApplyDelta(ctx, fromAccountID, Delta{Credit: amount}); compErr != nil {
			log.WithFields(log.Fields{
				"fromAccountID": fromAccountID,
				"toAccountID":   toAccountID,
				"amount":        amount,
				"error":         compErr,
			}).Error("Failed to compensate sender after credit failure")
			return nil, fmt.Errorf("transfer credit failed (%v) and compensation failed: %w", err, compErr)
		}
		return nil, fmt.Errorf("failed to credit recipient: %w", err)
	}

	outRecord := &models.TransactionRecord{
		AccountID: fromAccountID,
		Kind:      models.TransactionTransferOut,
		Amount:    amount,
		Status:    models.TransactionCompleted,
	}
	inRecord := &models.TransactionRecord{
		AccountID: toAccountID,
		Kind:      models.TransactionTransferIn,
		Amount:    amount,
		Status:    models.TransactionCompleted,
	}
	if err := s.transactions.Append(ctx, outRecord); err != nil {
		return nil, fmt.Errorf("transfer settled but log append failed (%v): %w", err, models.ErrRecordedUnlogged)
	}
	if err := s.transactions.Append(ctx, inRecord); err != nil {
		return nil, fmt.Errorf("transfer settled but log append failed (%v): %w", err, models.ErrRecordedUnlogged)
	}

	s.publisher.Publish(events.BalanceChangeEvent{
		AccountID:    fromAccountID,
		OldBalance:   sender.Balance + amount,
		NewBalance:   sender.Balance,
		ChangeAmount: -amount,
		Reason:       string(models.TransactionTransferOut),
	})
	s.publisher.Publish(events.BalanceChangeEvent{
		AccountID:    toAccountID,
		OldBalance:   recipient.Balance,
		NewBalance:   recipient.Balance + amount,
		ChangeAmount: amount,
		Reason:       string(models.TransactionTransferIn),
	})

	return &models.TransferResult{
		Amount:     amount,
		ToAccount:  toAccountID,
		NewBalance: sender.Balance,
	}, nil
}
