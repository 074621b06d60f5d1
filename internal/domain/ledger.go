package domain

import "time"

// LedgerKind tags a ledger entry with the action that produced it
type LedgerKind string

const (
	LedgerMine         LedgerKind = "mine"
	LedgerSell         LedgerKind = "sell"
	LedgerExchange     LedgerKind = "exchange"
	LedgerUpgrade      LedgerKind = "upgrade"
	LedgerCaseOpen     LedgerKind = "case_open"
	LedgerLadderStart  LedgerKind = "ladder_start"
	LedgerLadderPayout LedgerKind = "ladder_payout"
	LedgerLadderLoss   LedgerKind = "ladder_loss"
)

// LedgerEntry records a balance change in the same transaction as the change itself
type LedgerEntry struct {
	ID        int64                  `json:"id"`
	PlayerID  int64                  `json:"player_id"`
	Kind      LedgerKind             `json:"kind"`
	SoftDelta int64                  `json:"mcoin_delta"`
	HardDelta int64                  `json:"stars_delta"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
