package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kwanzabet/models"
	"kwanzabet/service"
)

// AccountStore implements the service.AccountStore interface with
// in-process state. Each account carries its own mutex, so mutations
// against one account form a total order while distinct accounts
// proceed independently; the outer lock only guards the map shape.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*accountEntry
}

type accountEntry struct {
	mu      sync.Mutex
	account models.Account
}

// NewAccountStore creates an empty account store
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*accountEntry)}
}

// Create creates a new account with the initial balance
func (s *AccountStore) Create(ctx context.Context, id string, startingBalance int64) (*models.Account, error) {
	if id == "" {
		return nil, fmt.Errorf("account id must not be empty")
	}
	if startingBalance < 0 {
		return nil, fmt.Errorf("starting balance must not be negative")
	}

	now := time.Now().UTC()
	entry := &accountEntry{account: models.Account{
		ID:        id,
		Balance:   startingBalance,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; ok {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrAccountExists)
	}
	s.accounts[id] = entry

	cp := entry.account
	return &cp, nil
}

// Get retrieves an account snapshot by id
func (s *AccountStore) Get(ctx context.Context, id string) (*models.Account, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	cp := entry.account
	return &cp, nil
}

// ApplyDelta atomically validates and applies a balance mutation. The
// affordability check and the mutation share one critical section, so
// two concurrent stakes can never both pass validation against a
// balance only one of them can afford.
func (s *AccountStore) ApplyDelta(ctx context.Context, id string, delta service.Delta) (*models.Account, error) {
	if delta.Stake < 0 || delta.Credit < 0 {
		return nil, fmt.Errorf("delta amounts must not be negative (stake %d, credit %d)", delta.Stake, delta.Credit)
	}

	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	acct := &entry.account
	if !acct.Active {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrAccountInactive)
	}
	if delta.Stake > acct.Balance {
		return nil, fmt.Errorf("have %d, need %d: %w", acct.Balance, delta.Stake, models.ErrInsufficientBalance)
	}

	acct.Balance = acct.Balance - delta.Stake + delta.Credit
	if delta.RecordBet {
		acct.TotalStaked += delta.Stake
		acct.TotalWon += delta.Credit
		acct.BetCount++
	}
	acct.UpdatedAt = time.Now().UTC()

	cp := *acct
	return &cp, nil
}

// Deactivate soft-deactivates an account; further mutations are rejected
func (s *AccountStore) Deactivate(ctx context.Context, id string) error {
	entry, err := s.entry(id)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.account.Active = false
	entry.account.UpdatedAt = time.Now().UTC()
	return nil
}

// GetAll returns snapshots of all accounts
func (s *AccountStore) GetAll(ctx context.Context) ([]*models.Account, error) {
	s.mu.RLock()
	entries := make([]*accountEntry, 0, len(s.accounts))
	for _, e := range s.accounts {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	accounts := make([]*models.Account, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		cp := e.account
		e.mu.Unlock()
		accounts = append(accounts, &cp)
	}
	return accounts, nil
}

func (s *AccountStore) entry(id string) (*accountEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrAccountNotFound)
	}
	return entry, nil
}
