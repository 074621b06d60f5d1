package repository

import (
	"context"
	"time"

	"github.com/osse101/MinesBot_Go/internal/domain"
)

// Tx defines the interface for transactional operations on a player.
// GetPlayerForUpdate must be the first call: it takes the row lock that
// serializes all of one player's actions.
type Tx interface {
	GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error)
	ApplyDelta(ctx context.Context, playerID int64, delta domain.Delta) error
	SetLastMineAt(ctx context.Context, playerID int64, at time.Time) error
	SetEquipmentTier(ctx context.Context, playerID int64, tier int) error
	InsertLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
