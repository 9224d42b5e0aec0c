package service

import (
	"context"
	"fmt"

	"kwanzabet/config"
	"kwanzabet/events"
	"kwanzabet/models"

	"github.com/google/uuid"
)

type accountService struct {
	accounts     AccountStore
	transactions TransactionLog
	publisher    EventPublisher
	cfg          *config.Config
}

// NewAccountService creates a new account service
func NewAccountService(accounts AccountStore, transactions TransactionLog, publisher EventPublisher, cfg *config.Config) AccountService {
	return &accountService{
		accounts:     accounts,
		transactions: transactions,
		publisher:    publisher,
		cfg:          cfg,
	}
}

// Register creates a new account with the configured starting balance.
// A non-zero grant is logged as a completed deposit so the transaction
// history accounts for every Kwanza the ledger has ever held.
func (s *accountService) Register(ctx context.Context) (*models.Account, error) {
	id := uuid.NewString()

	account, err := s.accounts.Create(ctx, id, s.cfg.StartingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if s.cfg.StartingBalance > 0 {
		record := &models.TransactionRecord{
			AccountID: id,
			Kind:      models.TransactionDeposit,
			Amount:    s.cfg.StartingBalance,
			Status:    models.TransactionCompleted,
		}
		if err := s.transactions.Append(ctx, record); err != nil {
			return nil, fmt.Errorf("account %s created but grant log append failed (%v): %w", id, err, models.ErrRecordedUnlogged)
		}
	}

	s.publisher.Publish(events.AccountCreatedEvent{
		AccountID:       id,
		StartingBalance: s.cfg.StartingBalance,
	})

	return account, nil
}

// Get retrieves an account by id
func (s *accountService) Get(ctx context.Context, accountID string) (*models.Account, error) {
	return s.accounts.Get(ctx, accountID)
}

// Deactivate soft-deactivates an account. History stays readable;
// every further ledger mutation is rejected.
func (s *accountService) Deactivate(ctx context.Context, accountID string) error {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return err
	}
	return s.accounts.Deactivate(ctx, accountID)
}
