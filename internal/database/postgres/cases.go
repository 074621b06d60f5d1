package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/MinesBot_Go/internal/database/generated"
	"github.com/osse101/MinesBot_Go/internal/domain"
)

// ReserveCollectible grants the oldest free collectible of kind to the player
func (t *pgTx) ReserveCollectible(ctx context.Context, kind string, playerID int64, at time.Time) (*domain.Collectible, error) {
	row, err := t.q.ReserveCollectible(ctx, generated.ReserveCollectibleParams{
		PlayerID:  playerID,
		GrantedAt: timestamptz(at),
		Kind:      kind,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCollectibleUnavailable
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReserveCollectible, err)
	}
	c := collectibleFromRow(row.CollectibleID, row.Kind, row.Serial, row.OwnerPlayerID, row.GrantedAt)
	return &c, nil
}

// ListCollectibles returns the player's collectibles, newest grant first
func (s *Store) ListCollectibles(ctx context.Context, playerID int64) ([]domain.Collectible, error) {
	rows, err := s.q.ListPlayerCollectibles(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCollectibles, err)
	}
	items := make([]domain.Collectible, 0, len(rows))
	for _, row := range rows {
		items = append(items, collectibleFromRow(row.CollectibleID, row.Kind, row.Serial, row.OwnerPlayerID, row.GrantedAt))
	}
	return items, nil
}

// GetPoolStock counts ungranted collectibles per kind. Kinds whose stock is
// fully granted are reported with zero.
func (s *Store) GetPoolStock(ctx context.Context) ([]domain.PoolStock, error) {
	rows, err := s.q.GetPoolStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPoolStock, err)
	}
	stock := make([]domain.PoolStock, 0, len(rows))
	for _, row := range rows {
		stock = append(stock, domain.PoolStock{Kind: row.Kind, Available: row.Available})
	}
	return stock, nil
}

// SeedCollectibles adds serials of kind to the pool. Serials already present
// are skipped; the number of new rows is returned.
func (s *Store) SeedCollectibles(ctx context.Context, kind string, serials []string) (int64, error) {
	if len(serials) == 0 {
		return 0, nil
	}
	added, err := s.q.SeedCollectibles(ctx, generated.SeedCollectiblesParams{Kind: kind, Serials: serials})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSeedPool, err)
	}
	return added, nil
}
