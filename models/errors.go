package models

import "errors"

// Error taxonomy for ledger and wager operations. Services wrap these
// with context via fmt.Errorf("...: %w", err); boundaries classify with
// errors.Is.
var (
	// ErrInvalidGame means the game tag is not one of the fixed variants.
	ErrInvalidGame = errors.New("invalid game")

	// ErrInvalidInput means the game-specific input shape is malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBelowMinimum means a stake, deposit or withdrawal is under the
	// policy floor.
	ErrBelowMinimum = errors.New("below minimum")

	// ErrInsufficientBalance means a stake or withdrawal exceeds the
	// account's current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound means the account id is unknown.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists means an account with that id was already created.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountInactive means the account was deactivated and rejects
	// balance mutations.
	ErrAccountInactive = errors.New("account inactive")

	// ErrMissingDestination means a withdrawal carried no payout destination.
	ErrMissingDestination = errors.New("missing payout destination")

	// ErrRecordedUnlogged means the ledger was mutated but the matching
	// log append failed. The caller must reconcile rather than report
	// success; the balance change is already durable in the ledger.
	ErrRecordedUnlogged = errors.New("recorded but unlogged")
)
