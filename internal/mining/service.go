package mining

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MinesBot_Go/internal/cooldown"
	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/event"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/repository"
	"github.com/osse101/MinesBot_Go/internal/tables"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

// Service defines the dig action
type Service interface {
	Mine(ctx context.Context, playerID int64) (*domain.MineResult, error)
}

type service struct {
	repo      repository.Mining
	tables    *tables.Tables
	generator *Generator
	cooldown  *cooldown.Checker
	bus       event.Bus
	now       func() time.Time
}

// NewService creates a new mining service
func NewService(repo repository.Mining, tb *tables.Tables, rng utils.RandomSource, checker *cooldown.Checker, bus event.Bus) Service {
	return &service{
		repo:      repo,
		tables:    tb,
		generator: NewGenerator(tb, rng),
		cooldown:  checker,
		bus:       bus,
		now:       time.Now,
	}
}

// Mine digs once for the player. The cooldown is read and advanced under
// the player row lock, so concurrent digs within the window serialize and
// all but the first fail with a cooldown error.
func (s *service) Mine(ctx context.Context, playerID int64) (*domain.MineResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgMineCalled, "player_id", playerID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player.EquipmentTier <= domain.MinEquipmentTier {
		return nil, domain.ErrNoPickaxe
	}

	now := s.now()
	if err := s.cooldown.Check(ctx, domain.ActionMine, player.LastMineAt, now); err != nil {
		return nil, err
	}

	tier := player.EquipmentTier
	raw, err := s.generator.Roll(tier)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGenerateDropFailed, err)
	}
	limit, err := s.tables.ValueCap(tier)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGenerateDropFailed, err)
	}
	drop := Clamp(s.tables, raw, limit)
	total := Value(s.tables, drop)

	if len(drop) > 0 {
		if err := tx.ApplyDelta(ctx, playerID, domain.Delta{Resources: drop}); err != nil {
			return nil, fmt.Errorf(ErrMsgApplyDropFailed, err)
		}
	}
	if err := tx.SetLastMineAt(ctx, playerID, now); err != nil {
		return nil, fmt.Errorf(ErrMsgSetLastMineFailed, err)
	}

	meta := map[string]interface{}{"tier": tier, "drop": drop, "value": total}
	if err := tx.InsertLedgerEntry(ctx, &domain.LedgerEntry{
		PlayerID:  playerID,
		Kind:      domain.LedgerMine,
		Meta:      meta,
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertLedgerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	capped := Value(s.tables, raw) > limit
	event.Emit(ctx, s.bus, event.New(event.MineCompleted, domain.MineCompletedPayload{
		PlayerID:   playerID,
		Tier:       tier,
		Drop:       drop,
		TotalValue: total,
		Capped:     capped,
		Timestamp:  now.Unix(),
	}, now))

	log.Info(LogMsgMineCompleted, "player_id", playerID, "tier", tier, "value", total, "cap", limit, "capped", capped)
	return &domain.MineResult{
		Tier:       tier,
		Drop:       drop,
		TotalValue: total,
		ValueCap:   limit,
		NextMineAt: s.cooldown.NextAllowed(domain.ActionMine, now),
	}, nil
}
