package models

import (
	"time"
)

// Account is the authoritative ledger record for a single player.
// All amounts are whole Kwanza, stored as integers.
// Balance never goes negative and changes only through the account
// store's single mutation entry point.
type Account struct {
	ID          string    `json:"id"`
	Balance     int64     `json:"balance"`
	TotalStaked int64     `json:"total_staked"`
	TotalWon    int64     `json:"total_won"`
	BetCount    int64     `json:"bet_count"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Stats returns a point-in-time snapshot of the account's ledger statistics.
func (a *Account) Stats() AccountStats {
	return AccountStats{
		Balance:     a.Balance,
		TotalStaked: a.TotalStaked,
		TotalWon:    a.TotalWon,
		BetCount:    a.BetCount,
	}
}
