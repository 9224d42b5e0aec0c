package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kwanzabet/models"

	"github.com/google/uuid"
)

// TransactionLog is the append-only, account-indexed record of wallet
// transactions. Unlike bet history, transaction history is uncapped.
type TransactionLog struct {
	mu        sync.RWMutex
	byAccount map[string][]models.TransactionRecord
}

// NewTransactionLog creates an empty transaction log
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{byAccount: make(map[string][]models.TransactionRecord)}
}

// Append stores an immutable transaction record, assigning id and timestamp
func (l *TransactionLog) Append(ctx context.Context, record *models.TransactionRecord) error {
	if record.AccountID == "" {
		return fmt.Errorf("transaction record missing account id")
	}

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.byAccount[record.AccountID] = append(l.byAccount[record.AccountID], *record)
	return nil
}

// HistoryFor returns all records for one account, most recent first
func (l *TransactionLog) HistoryFor(ctx context.Context, accountID string) ([]*models.TransactionRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := l.byAccount[accountID]
	out := make([]*models.TransactionRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		cp := records[i]
		out = append(out, &cp)
	}
	return out, nil
}
