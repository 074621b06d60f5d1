package repository

import (
	"context"
	"time"

	"github.com/osse101/MinesBot_Go/internal/domain"
)

// CasesTx extends Tx with collectible pool reservation.
// ReserveCollectible returns domain.ErrCollectibleUnavailable when the pool
// for kind is empty.
type CasesTx interface {
	Tx
	ReserveCollectible(ctx context.Context, kind string, playerID int64, at time.Time) (*domain.Collectible, error)
}

// Cases defines the repository for case openings and the collectible pool
type Cases interface {
	BeginCasesTx(ctx context.Context) (CasesTx, error)
	ListCollectibles(ctx context.Context, playerID int64) ([]domain.Collectible, error)
	GetPoolStock(ctx context.Context) ([]domain.PoolStock, error)
}
