package models

// AccountStats is the ledger statistics snapshot for one account.
type AccountStats struct {
	Balance     int64 `json:"balance"`
	TotalStaked int64 `json:"total_staked"`
	TotalWon    int64 `json:"total_won"`
	BetCount    int64 `json:"bet_count"`
}

// ScoreboardEntry represents an account's entry in the scoreboard.
// ReturnRate is total won over total staked, 0 when nothing was staked.
type ScoreboardEntry struct {
	Rank       int     `json:"rank"`
	AccountID  string  `json:"account_id"`
	Balance    int64   `json:"balance"`
	BetCount   int64   `json:"bet_count"`
	ReturnRate float64 `json:"return_rate"`
}
