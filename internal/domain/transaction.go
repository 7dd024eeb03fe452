package domain

type TransactionKind string

const (
	TransactionKindTransfer TransactionKind = "transfer"
	TransactionKindAirtime  TransactionKind = "airtime"
	TransactionKindDeposit  TransactionKind = "deposit"
)

// TransactionRecord is an append-only log entry. IDs are unix-nano
// timestamps taken at creation, so ordering within a process is
// non-decreasing; nothing stronger is guaranteed across restarts.
// Details carries whatever the presentation layer chose to log for the
// kind: counterparty bank and account for transfers, network and phone
// for airtime, amount and resulting balance on all of them.
type TransactionRecord struct {
	ID         int64           `json:"id"`
	Kind       TransactionKind `json:"kind"`
	Details    map[string]any  `json:"details"`
	OccurredAt string          `json:"occurred_at"`
}
