package service

import (
	"context"
	"fmt"

	"kwanzabet/config"
	"kwanzabet/events"
	"kwanzabet/games"
	"kwanzabet/models"
	"kwanzabet/rng"
)

type wagerService struct {
	accounts  AccountStore
	bets      BetLog
	rnd       rng.Provider
	publisher EventPublisher
	cfg       *config.Config
}

// NewWagerService creates a new wager service
func NewWagerService(accounts AccountStore, bets BetLog, rnd rng.Provider, publisher EventPublisher, cfg *config.Config) WagerService {
	return &wagerService{
		accounts:  accounts,
		bets:      bets,
		rnd:       rnd,
		publisher: publisher,
		cfg:       cfg,
	}
}

// PlaceBet resolves one bet end to end. The flow is strictly ordered:
// validate, resolve, settle, record. Drawing the outcome has no
// observable effect, and the affordability check runs inside the same
// critical section as the debit, so a failure anywhere before the bet
// record is appended leaves the account untouched.
func (s *wagerService) PlaceBet(ctx context.Context, accountID string, game models.Game, stake int64, input models.BetInput) (*models.BetResult, error) {
	if stake < s.cfg.MinStake {
		return nil, fmt.Errorf("stake %d is under the minimum of %d: %w", stake, s.cfg.MinStake, models.ErrBelowMinimum)
	}
	if err := games.ValidateInput(game, input); err != nil {
		return nil, err
	}
	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.Active {
		return nil, fmt.Errorf("account %s: %w", accountID, models.ErrAccountInactive)
	}

	resolution, err := games.Resolve(game, stake, input, s.rnd)
	if err != nil {
		return nil, err
	}

	// ApplyDelta re-verifies affordability under the account lock; the
	// balance read above is advisory only.
	account, err = s.accounts.ApplyDelta(ctx, accountID, Delta{
		Stake:     stake,
		Credit:    resolution.Prize,
		RecordBet: true,
	})
	if err != nil {
		return nil, err
	}

	record := &models.BetRecord{
		AccountID: accountID,
		Game:      game,
		Stake:     stake,
		Outcome:   resolution.Outcome,
		Net:       resolution.Prize - stake,
	}
	if err := s.bets.Append(ctx, record); err != nil {
		// The ledger already moved. Reporting this as a plain failure
		// would let the caller assume no debit happened.
		return nil, fmt.Errorf("bet settled for account %s but log append failed (%v): %w", accountID, err, models.ErrRecordedUnlogged)
	}

	s.publisher.Publish(events.BetPlacedEvent{
		AccountID: accountID,
		BetID:     record.ID,
		Game:      game,
		Stake:     stake,
		Won:       resolution.Won,
		Prize:     resolution.Prize,
	})
	s.publisher.Publish(events.BalanceChangeEvent{
		AccountID:    accountID,
		OldBalance:   account.Balance - record.Net,
		NewBalance:   account.Balance,
		ChangeAmount: record.Net,
		Reason:       string(game),
	})

	return &models.BetResult{
		Won:        resolution.Won,
		Prize:      resolution.Prize,
		Outcome:    resolution.Outcome,
		NewBalance: account.Balance,
		Stats:      account.Stats(),
	}, nil
}

// BetHistory returns the account's most recent bets, most recent
// first, capped by the configured history limit.
func (s *wagerService) BetHistory(ctx context.Context, accountID string, limit int) ([]*models.BetRecord, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > s.cfg.BetHistoryLimit {
		limit = s.cfg.BetHistoryLimit
	}
	return s.bets.HistoryFor(ctx, accountID, limit)
}
