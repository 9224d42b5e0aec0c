package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kwanzabet/models"

	"github.com/google/uuid"
)

// BetLog is the append-only, account-indexed record of settled bets.
// Records are stored by value and handed out as copies; nothing ever
// mutates an appended record.
type BetLog struct {
	mu        sync.RWMutex
	byAccount map[string][]models.BetRecord
}

// NewBetLog creates an empty bet log
func NewBetLog() *BetLog {
	return &BetLog{byAccount: make(map[string][]models.BetRecord)}
}

// Append stores an immutable bet record, assigning id and timestamp
func (l *BetLog) Append(ctx context.Context, record *models.BetRecord) error {
	if record.AccountID == "" {
		return fmt.Errorf("bet record missing account id")
	}

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.byAccount[record.AccountID] = append(l.byAccount[record.AccountID], *record)
	return nil
}

// HistoryFor returns up to limit records for one account, most recent
// first. limit <= 0 means no cap.
func (l *BetLog) HistoryFor(ctx context.Context, accountID string, limit int) ([]*models.BetRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := l.byAccount[accountID]
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	out := make([]*models.BetRecord, 0, limit)
	for i := len(records) - 1; i >= 0 && len(out) < limit; i-- {
		cp := records[i]
		out = append(out, &cp)
	}
	return out, nil
}
