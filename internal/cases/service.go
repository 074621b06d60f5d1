package cases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/event"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/repository"
	"github.com/osse101/MinesBot_Go/internal/tables"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

// Service defines loot box operations
type Service interface {
	Open(ctx context.Context, playerID int64, kind string) (*domain.CaseResult, error)
	ListCollectibles(ctx context.Context, playerID int64) ([]domain.Collectible, error)
	PoolStock(ctx context.Context) ([]domain.PoolStock, error)
}

type service struct {
	repo   repository.Cases
	tables *tables.Tables
	rng    utils.RandomSource
	bus    event.Bus
	now    func() time.Time
}

// NewService creates a new case service
func NewService(repo repository.Cases, tb *tables.Tables, rng utils.RandomSource, bus event.Bus) Service {
	if rng == nil {
		rng = utils.DefaultRNG()
	}
	return &service{
		repo:   repo,
		tables: tb,
		rng:    rng,
		bus:    bus,
		now:    time.Now,
	}
}

// Open charges the case cost and grants one prize. A collectible prize
// must reserve a pool row; when the pool is empty nothing is charged.
func (s *service) Open(ctx context.Context, playerID int64, kind string) (*domain.CaseResult, error) {
	log := logger.FromContext(ctx)

	def, ok := s.tables.Case(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCase, kind)
	}

	tx, err := s.repo.BeginCasesTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player.HardCurrency < def.Cost {
		return nil, domain.ErrNotEnoughHardCurrency
	}

	now := s.now()
	prize := Pick(s.rng, def.Prizes)
	result := &domain.CaseResult{
		Case:      kind,
		Cost:      def.Cost,
		PrizeKey:  prize.Key,
		PrizeName: prize.Name,
	}

	if prize.IsCollectible() {
		item, err := tx.ReserveCollectible(ctx, prize.Collectible, playerID, now)
		if errors.Is(err, domain.ErrCollectibleUnavailable) {
			log.Warn(LogMsgPoolExhausted, "player_id", playerID, "kind", prize.Collectible)
			event.Emit(ctx, s.bus, event.New(event.CollectibleExhausted, domain.CollectibleExhaustedPayload{
				PlayerID:  playerID,
				Kind:      prize.Collectible,
				Timestamp: now.Unix(),
			}, now))
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf(ErrMsgReserveFailed, err)
		}
		result.Collectible = item
	} else {
		result.Stars = prize.Stars
	}

	net := result.Stars - def.Cost
	if err := tx.ApplyDelta(ctx, playerID, domain.Delta{Hard: net}); err != nil {
		return nil, fmt.Errorf(ErrMsgApplyDeltaFailed, err)
	}

	meta := map[string]interface{}{"case": kind, "prize": prize.Key}
	if result.Collectible != nil {
		meta["collectible_id"] = result.Collectible.ID
		meta["serial"] = result.Collectible.Serial
	}
	if err := tx.InsertLedgerEntry(ctx, &domain.LedgerEntry{
		PlayerID:  playerID,
		Kind:      domain.LedgerCaseOpen,
		HardDelta: net,
		Meta:      meta,
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertLedgerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.Emit(ctx, s.bus, event.New(event.CaseOpened, domain.CaseOpenedPayload{
		PlayerID:  playerID,
		Case:      kind,
		Prize:     prize.Key,
		Cost:      def.Cost,
		StarsWon:  result.Stars,
		Timestamp: now.Unix(),
	}, now))

	log.Info(LogMsgCaseOpened, "player_id", playerID, "case", kind, "prize", prize.Key)
	result.HardCurrency = player.HardCurrency + net
	return result, nil
}

// ListCollectibles returns the collectibles granted to the player
func (s *service) ListCollectibles(ctx context.Context, playerID int64) ([]domain.Collectible, error) {
	items, err := s.repo.ListCollectibles(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCollectiblesFailed, err)
	}
	return items, nil
}

// PoolStock returns the ungranted count per collectible kind
func (s *service) PoolStock(ctx context.Context) ([]domain.PoolStock, error) {
	stock, err := s.repo.GetPoolStock(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPoolStockFailed, err)
	}
	return stock, nil
}
