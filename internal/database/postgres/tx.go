package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/MinesBot_Go/internal/database/generated"
	"github.com/osse101/MinesBot_Go/internal/domain"
)

// pgTx implements repository.Tx, repository.LadderTx and repository.CasesTx
type pgTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// Commit commits the transaction
func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction. Rolling back after Commit returns
// domain.ErrTxClosed.
func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return err
	}
	return nil
}

// GetPlayerForUpdate reads the player and holds its row lock until the
// transaction ends
func (t *pgTx) GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error) {
	p, err := playerResult(t.q.GetPlayerForUpdate(ctx, playerID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockPlayer, err)
	}
	return p, nil
}

// ApplyDelta adds delta to the player's balances. The CHECK constraints
// reject any result below zero.
func (t *pgTx) ApplyDelta(ctx context.Context, playerID int64, delta domain.Delta) error {
	if delta.IsZero() {
		return nil
	}

	affected, err := t.q.ApplyPlayerDelta(ctx, generated.ApplyPlayerDeltaParams{
		SoftDelta:    delta.Soft,
		HardDelta:    delta.Hard,
		CoalDelta:    delta.Resources[domain.ResourceCoal],
		CopperDelta:  delta.Resources[domain.ResourceCopper],
		IronDelta:    delta.Resources[domain.ResourceIron],
		GoldDelta:    delta.Resources[domain.ResourceGold],
		DiamondDelta: delta.Resources[domain.ResourceDiamond],
		PlayerID:     playerID,
	})
	if err != nil {
		if isPgError(err, PgErrorCodeCheckViolation) {
			return fmt.Errorf("%s: %s: %w", ErrMsgFailedToApplyDelta, ErrMsgBalanceConstraint, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyDelta, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyDelta, domain.ErrPlayerNotFound)
	}
	return nil
}

// SetLastMineAt records the time of a successful dig
func (t *pgTx) SetLastMineAt(ctx context.Context, playerID int64, at time.Time) error {
	err := t.q.SetLastMineAt(ctx, generated.SetLastMineAtParams{PlayerID: playerID, LastMineAt: timestamptz(at)})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetLastMine, err)
	}
	return nil
}

// SetEquipmentTier stores the player's pickaxe level
func (t *pgTx) SetEquipmentTier(ctx context.Context, playerID int64, tier int) error {
	err := t.q.SetEquipmentTier(ctx, generated.SetEquipmentTierParams{PlayerID: playerID, EquipmentTier: int32(tier)})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetEquipmentTier, err)
	}
	return nil
}

// InsertLedgerEntry records a balance change and fills in its id and timestamp
func (t *pgTx) InsertLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	var meta []byte
	if len(entry.Meta) > 0 {
		var err error
		if meta, err = json.Marshal(entry.Meta); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeMeta, err)
		}
	}

	row, err := t.q.InsertLedgerEntry(ctx, generated.InsertLedgerEntryParams{
		PlayerID:  entry.PlayerID,
		Kind:      string(entry.Kind),
		SoftDelta: entry.SoftDelta,
		HardDelta: entry.HardDelta,
		Meta:      meta,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLedger, err)
	}
	entry.ID = row.LedgerID
	entry.CreatedAt = row.CreatedAt.Time
	return nil
}
