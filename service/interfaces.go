package service

import (
	"context"

	"kwanzabet/events"
	"kwanzabet/models"
)

// Delta describes one atomic ledger mutation. Stake debits the balance
// and must be affordable at the moment the mutation is applied; Credit
// is added unconditionally. RecordBet folds the delta into the
// account's cumulative betting statistics.
type Delta struct {
	Stake     int64
	Credit    int64
	RecordBet bool
}

// AccountStore defines the interface for ledger account state. The
// implementation owns its synchronization: ApplyDelta runs the
// affordability check and the mutation in one per-account critical
// section, and mutations against distinct accounts never serialize
// against each other.
type AccountStore interface {
	// Create creates a new account with the initial balance
	Create(ctx context.Context, id string, startingBalance int64) (*models.Account, error)

	// Get retrieves an account snapshot by id
	Get(ctx context.Context, id string) (*models.Account, error)

	// ApplyDelta atomically validates and applies a balance mutation,
	// failing with ErrInsufficientBalance if the stake exceeds the
	// current balance
	ApplyDelta(ctx context.Context, id string, delta Delta) (*models.Account, error)

	// Deactivate soft-deactivates an account; further mutations are rejected
	Deactivate(ctx context.Context, id string) error

	// GetAll returns snapshots of all accounts
	GetAll(ctx context.Context) ([]*models.Account, error)
}

// BetLog defines the interface for the append-only bet record log
type BetLog interface {
	// Append stores an immutable bet record, assigning id and timestamp
	Append(ctx context.Context, record *models.BetRecord) error

	// HistoryFor returns up to limit records for one account,
	// most recent first
	HistoryFor(ctx context.Context, accountID string, limit int) ([]*models.BetRecord, error)
}

// TransactionLog defines the interface for the append-only transaction log
type TransactionLog interface {
	// Append stores an immutable transaction record, assigning id and timestamp
	Append(ctx context.Context, record *models.TransactionRecord) error

	// HistoryFor returns all records for one account, most recent first
	HistoryFor(ctx context.Context, accountID string) ([]*models.TransactionRecord, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// AccountService defines the interface for account lifecycle operations
type AccountService interface {
	// Register creates a new account with the configured starting balance
	Register(ctx context.Context) (*models.Account, error)

	// Get retrieves an account by id
	Get(ctx context.Context, accountID string) (*models.Account, error)

	// Deactivate soft-deactivates an account
	Deactivate(ctx context.Context, accountID string) error
}

// WagerService defines the interface for bet placement and history
type WagerService interface {
	// PlaceBet resolves one bet end to end: validates the stake and
	// input, draws the outcome, settles the ledger atomically and
	// appends the bet record. A bet is resolved exactly once.
	PlaceBet(ctx context.Context, accountID string, game models.Game, stake int64, input models.BetInput) (*models.BetResult, error)

	// BetHistory returns the account's most recent bets, capped by policy
	BetHistory(ctx context.Context, accountID string, limit int) ([]*models.BetRecord, error)
}

// WalletService defines the interface for deposit and withdraw operations
type WalletService interface {
	// Deposit credits the account and logs a completed transaction
	Deposit(ctx context.Context, accountID string, amount int64) (*models.TransactionResult, error)

	// Withdraw debits the account atomically with the balance check and
	// logs a pending transaction bound for the payout destination
	Withdraw(ctx context.Context, accountID string, amount int64, destination *models.PayoutDestination) (*models.TransactionResult, error)

	// TransactionHistory returns all wallet transactions, most recent first
	TransactionHistory(ctx context.Context, accountID string) ([]*models.TransactionRecord, error)
}

// TransferService defines the interface for account-to-account transfers
type TransferService interface {
	// Transfer moves amount from one account to another
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount int64) (*models.TransferResult, error)
}

// StatsService defines the interface for statistics operations
type StatsService interface {
	// GetAccountStats returns the ledger statistics snapshot for an account
	GetAccountStats(ctx context.Context, accountID string) (*models.AccountStats, error)

	// GetScoreboard returns the top accounts by balance
	GetScoreboard(ctx context.Context, limit int) ([]*models.ScoreboardEntry, error)
}
