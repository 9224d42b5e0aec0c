package service

import (
	"context"
	"sort"

	"kwanzabet/models"
)

type statsService struct {
	accounts AccountStore
}

// NewStatsService creates a new stats service
func NewStatsService(accounts AccountStore) StatsService {
	return &statsService{accounts: accounts}
}

// GetAccountStats returns the ledger statistics snapshot for an account
func (s *statsService) GetAccountStats(ctx context.Context, accountID string) (*models.AccountStats, error) {
	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	stats := account.Stats()
	return &stats, nil
}

// GetScoreboard returns the top accounts by balance, active accounts
// only. Ties break on account id so the ordering is stable across calls.
func (s *statsService) GetScoreboard(ctx context.Context, limit int) ([]*models.ScoreboardEntry, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*models.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Active {
			active = append(active, a)
		}
	}

	sort.Slice(active, func(i, j int) bool {
		if active[i].Balance != active[j].Balance {
			return active[i].Balance > active[j].Balance
		}
		return active[i].ID < active[j].ID
	})

	if limit <= 0 || limit > len(active) {
		limit = len(active)
	}

	entries := make([]*models.ScoreboardEntry, 0, limit)
	for i := 0; i < limit; i++ {
		a := active[i]
		var returnRate float64
		if a.TotalStaked > 0 {
			returnRate = float64(a.TotalWon) / float64(a.TotalStaked)
		}
		entries = append(entries, &models.ScoreboardEntry{
			Rank:       i + 1,
			AccountID:  a.ID,
			Balance:    a.Balance,
			BetCount:   a.BetCount,
			ReturnRate: returnRate,
		})
	}
	return entries, nil
}
