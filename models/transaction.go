package models

import "time"

// TransactionKind represents the type of balance-affecting transaction.
type TransactionKind string

const (
	TransactionDeposit     TransactionKind = "deposit"
	TransactionWithdraw    TransactionKind = "withdraw"
	TransactionTransferIn  TransactionKind = "transfer_in"
	TransactionTransferOut TransactionKind = "transfer_out"
)

// TransactionStatus is the settlement state of a transaction.
// Withdrawals are created pending; everything else completes immediately.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
)

// PayoutDestination is the withdraw payout target supplied by the player.
type PayoutDestination struct {
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
}

// TransactionRecord is the immutable log entry for one deposit,
// withdrawal or transfer leg. Amount is always positive; Kind carries
// the direction.
type TransactionRecord struct {
	ID          string             `json:"id"`
	AccountID   string             `json:"account_id"`
	Kind        TransactionKind    `json:"kind"`
	Amount      int64              `json:"amount"`
	Status      TransactionStatus  `json:"status"`
	Destination *PayoutDestination `json:"destination,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// TransactionResult is returned to the caller after a wallet operation.
type TransactionResult struct {
	NewBalance int64              `json:"new_balance"`
	Record     *TransactionRecord `json:"record"`
}
