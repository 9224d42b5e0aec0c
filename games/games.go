// Package games holds the pure resolution rules for the mini-game
// variants. Stake and input validation are the wager service's job;
// Resolve assumes both already passed.
package games

import (
	"fmt"

	"kwanzabet/models"
	"kwanzabet/rng"
)

const (
	numbersRange  = 25
	numbersPayout = 24
	slotsPayout   = 10
	coinPayout    = 2
)

// slotSymbols is the 7-symbol reel alphabet. Three equal symbols win.
var slotSymbols = [...]string{"cherry", "lemon", "orange", "bell", "bar", "seven", "star"}

// wheelSegments is the fixed 8-segment multiplier table. Zero segments lose.
var wheelSegments = [...]float64{2, 0, 1.5, 0, 3, 0, 5, 0}

// Resolution is the deterministic-given-outcome result of one bet.
type Resolution struct {
	Won     bool
	Prize   int64
	Outcome models.GameOutcome
}

// ValidateInput checks the game-specific input shape. It is called by
// the wager service before any outcome is drawn.
func ValidateInput(game models.Game, input models.BetInput) error {
	switch game {
	case models.GameNumbers:
		if input.SelectedNumber < 1 || input.SelectedNumber > numbersRange {
			return fmt.Errorf("selected number %d must be in [1,%d]: %w", input.SelectedNumber, numbersRange, models.ErrInvalidInput)
		}
	case models.GameCoin:
		if input.Choice != models.CoinHeads && input.Choice != models.CoinTails {
			return fmt.Errorf("coin choice %q must be heads or tails: %w", input.Choice, models.ErrInvalidInput)
		}
	case models.GameSlots, models.GameWheel:
		// No player input.
	default:
		return fmt.Errorf("unknown game %q: %w", game, models.ErrInvalidGame)
	}
	return nil
}

// Resolve draws an outcome for the given game and computes win and
// prize. It has no effect other than advancing the provider.
func Resolve(game models.Game, stake int64, input models.BetInput, rnd rng.Provider) (Resolution, error) {
	switch game {
	case models.GameNumbers:
		return resolveNumbers(stake, input.SelectedNumber, rnd), nil
	case models.GameSlots:
		return resolveSlots(stake, rnd), nil
	case models.GameWheel:
		return resolveWheel(stake, rnd), nil
	case models.GameCoin:
		return resolveCoin(stake, input.Choice, rnd), nil
	default:
		return Resolution{}, fmt.Errorf("unknown game %q: %w", game, models.ErrInvalidGame)
	}
}

func resolveNumbers(stake int64, selected int, rnd rng.Provider) Resolution {
	winning := rnd.DrawUniform(numbersRange) + 1
	res := Resolution{Outcome: models.NumbersOutcome{Selected: selected, Winning: winning}}
	if winning == selected {
		res.Won = true
		res.Prize = stake * numbersPayout
	}
	return res
}

func resolveSlots(stake int64, rnd rng.Provider) Resolution {
	var reels [3]string
	for i := range reels {
		reels[i] = slotSymbols[rnd.DrawUniform(len(slotSymbols))]
	}
	res := Resolution{Outcome: models.SlotsOutcome{Reels: reels}}
	if reels[0] == reels[1] && reels[1] == reels[2] {
		res.Won = true
		res.Prize = stake * slotsPayout
	}
	return res
}

func resolveWheel(stake int64, rnd rng.Provider) Resolution {
	segment := rnd.DrawUniform(len(wheelSegments))
	multiplier := wheelSegments[segment]
	res := Resolution{Outcome: models.WheelOutcome{Segment: segment, Multiplier: multiplier}}
	if multiplier > 0 {
		res.Won = true
		// Fractional prizes truncate toward zero.
		res.Prize = int64(float64(stake) * multiplier)
	}
	return res
}

func resolveCoin(stake int64, choice models.CoinSide, rnd rng.Provider) Resolution {
	flip := models.CoinTails
	if rnd.DrawBoolean(0.5) {
		flip = models.CoinHeads
	}
	res := Resolution{Outcome: models.CoinOutcome{Choice: choice, Flip: flip}}
	if flip == choice {
		res.Won = true
		res.Prize = stake * coinPayout
	}
	return res
}
