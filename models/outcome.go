package models

// Game identifies one of the fixed mini-game variants.
type Game string

const (
	GameNumbers Game = "numbers"
	GameSlots   Game = "slots"
	GameWheel   Game = "wheel"
	GameCoin    Game = "coin"
)

// CoinSide is a coin-flip choice or result.
type CoinSide string

const (
	CoinHeads CoinSide = "heads"
	CoinTails CoinSide = "tails"
)

// GameOutcome is the closed set of per-variant outcome payloads. Each
// variant carries enough data to reconstruct the win decision and the
// prize multiplier that was applied.
type GameOutcome interface {
	GameTag() Game
}

// NumbersOutcome records a numbers draw against the player's pick.
type NumbersOutcome struct {
	Selected int `json:"selected"`
	Winning  int `json:"winning"`
}

func (NumbersOutcome) GameTag() Game { return GameNumbers }

// SlotsOutcome records the three drawn reel symbols.
type SlotsOutcome struct {
	Reels [3]string `json:"reels"`
}

func (SlotsOutcome) GameTag() Game { return GameSlots }

// WheelOutcome records the landed segment and its multiplier.
type WheelOutcome struct {
	Segment    int     `json:"segment"`
	Multiplier float64 `json:"multiplier"`
}

func (WheelOutcome) GameTag() Game { return GameWheel }

// CoinOutcome records the player's call and the flip result.
type CoinOutcome struct {
	Choice CoinSide `json:"choice"`
	Flip   CoinSide `json:"flip"`
}

func (CoinOutcome) GameTag() Game { return GameCoin }
