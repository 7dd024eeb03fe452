package ledger

import (
	"sync"
	"time"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
)

// Log is the process-lifetime transaction history, newest first. It is
// never read back from the store, even when one is configured; history
// starts empty on every boot. Recording is the caller's decision, not
// the ledger operations' — the presentation layer chooses what to log
// after a successful operation.
type Log struct {
	mu      sync.Mutex
	records []domain.TransactionRecord
}

func NewLog() *Log {
	return &Log{}
}

// Record appends at the head and never fails.
func (l *Log) Record(kind domain.TransactionKind, details map[string]any) domain.TransactionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	record := domain.TransactionRecord{
		ID:         now.UnixNano(),
		Kind:       kind,
		Details:    details,
		OccurredAt: now.Format(time.RFC3339),
	}

	l.records = append([]domain.TransactionRecord{record}, l.records...)
	return record
}

// List returns a snapshot, newest first.
func (l *Log) List() []domain.TransactionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]domain.TransactionRecord, len(l.records))
	copy(snapshot, l.records)
	return snapshot
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}
