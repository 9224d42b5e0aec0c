package models

import "time"

// BetInput carries the game-specific player choices for one bet.
// Which fields are meaningful depends on the game variant; the wager
// service validates the shape before resolution.
type BetInput struct {
	SelectedNumber int      `json:"selected_number,omitempty"`
	Choice         CoinSide `json:"choice,omitempty"`
}

// BetRecord is the immutable log entry for one settled bet.
// Net is the signed balance effect: prize minus stake.
type BetRecord struct {
	ID        string      `json:"id"`
	AccountID string      `json:"account_id"`
	Game      Game        `json:"game"`
	Stake     int64       `json:"stake"`
	Outcome   GameOutcome `json:"outcome"`
	Net       int64       `json:"net"`
	CreatedAt time.Time   `json:"created_at"`
}

// BetResult is the outcome of a bet returned to the caller.
type BetResult struct {
	Won        bool         `json:"won"`
	Prize      int64        `json:"prize"`
	Outcome    GameOutcome  `json:"outcome"`
	NewBalance int64        `json:"new_balance"`
	Stats      AccountStats `json:"stats"`
}

// TransferResult is the outcome of a transfer returned to the sender.
type TransferResult struct {
	Amount     int64  `json:"amount"`
	ToAccount  string `json:"to_account"`
	NewBalance int64  `json:"new_balance"`
}
