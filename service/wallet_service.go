package service

import (
	"context"
	"fmt"

	"kwanzabet/config"
	"kwanzabet/events"
	"kwanzabet/models"
)

type walletService struct {
	accounts     AccountStore
	transactions TransactionLog
	publisher    EventPublisher
	cfg          *config.Config
}

// NewWalletService creates a new wallet service
func NewWalletService(accounts AccountStore, transactions TransactionLog, publisher EventPublisher, cfg *config.Config) WalletService {
	return &walletService{
		accounts:     accounts,
		transactions: transactions,
		publisher:    publisher,
		cfg:          cfg,
	}
}

// Deposit credits the account and logs a completed transaction
func (s *walletService) Deposit(ctx context.Context, accountID string, amount int64) (*models.TransactionResult, error) {
	if amount < s.cfg.MinDeposit {
		return nil, fmt.Errorf("deposit of %d is under the minimum of %d: %w", amount, s.cfg.MinDeposit, models.ErrBelowMinimum)
	}

	account, err := s.accounts.ApplyDelta(ctx, accountID, Delta{Credit: amount})
	if err != nil {
		return nil, err
	}

	record := &models.TransactionRecord{
		AccountID: accountID,
		Kind:      models.TransactionDeposit,
		Amount:    amount,
		Status:    models.TransactionCompleted,
	}
	if err := s.transactions.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("deposit credited to account %s but log append failed (%v): %w", accountID, err, models.ErrRecordedUnlogged)
	}

	s.publishRecorded(accountID, record)
	s.publisher.Publish(events.BalanceChangeEvent{
		AccountID:    accountID,
		OldBalance:   account.Balance - amount,
		NewBalance:   account.Balance,
		ChangeAmount: amount,
		Reason:       string(models.TransactionDeposit),
	})

	return &models.TransactionResult{NewBalance: account.Balance, Record: record}, nil
}

// Withdraw debits the account atomically with the balance check and
// logs a pending transaction bound for the payout destination. The
// record stays pending until an external payout rail confirms it;
// nothing in this process flips it to completed.
func (s *walletService) Withdraw(ctx context.Context, accountID string, amount int64, destination *models.PayoutDestination) (*models.TransactionResult, error) {
	if amount < s.cfg.MinWithdraw {
		return nil, fmt.Errorf("withdrawal of %d is under the minimum of %d: %w", amount, s.cfg.MinWithdraw, models.ErrBelowMinimum)
	}
	if destination == nil || destination.Provider == "" || destination.Reference == "" {
		return nil, fmt.Errorf("withdrawal requires a payout destination: %w", models.ErrMissingDestination)
	}

	account, err := s.accounts.ApplyDelta(ctx, accountID, Delta{Stake: amount})
	if err != nil {
		return nil, err
	}

	dst := *destination
	record := &models.TransactionRecord{
		AccountID:   accountID,
		Kind:        models.TransactionWithdraw,
		Amount:      amount,
		Status:      models.TransactionPending,
		Destination: &dst,
	}
	if err := s.transactions.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("withdrawal debited from account %s but log append failed (%v): %w", accountID, err, models.ErrRecordedUnlogged)
	}

	s.publishRecorded(accountID, record)
	s.publisher.Publish(events.BalanceChangeEvent{
		AccountID:    accountID,
		OldBalance:   account.Balance + amount,
		NewBalance:   account.Balance,
		ChangeAmount: -amount,
		Reason:       string(models.TransactionWithdraw),
	})

	return &models.TransactionResult{NewBalance: account.Balance, Record: record}, nil
}

// TransactionHistory returns all wallet transactions, most recent first
func (s *walletService) TransactionHistory(ctx context.Context, accountID string) ([]*models.TransactionRecord, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}
	return s.transactions.HistoryFor(ctx, accountID)
}

func (s *walletService) publishRecorded(accountID string, record *models.TransactionRecord) {
	s.publisher.Publish(events.TransactionRecordedEvent{
		AccountID:     accountID,
		TransactionID: record.ID,
		Kind:          record.Kind,
		Amount:        record.Amount,
	})
}
