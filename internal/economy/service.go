package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/event"
	"github.com/osse101/MinesBot_Go/internal/repository"
	"github.com/osse101/MinesBot_Go/internal/tables"
)

// Service defines the shop operations: selling ore, exchanging currencies
// and upgrading the pickaxe
type Service interface {
	Sell(ctx context.Context, playerID int64, resource string, quantity int64, all bool) (*domain.SellResult, error)
	Exchange(ctx context.Context, playerID int64, direction string, amount int64) (*domain.ExchangeResult, error)
	QuoteUpgrade(ctx context.Context, player *domain.Player) (*domain.UpgradeQuote, error)
	UpgradeEquipment(ctx context.Context, playerID int64, method string) (*domain.UpgradeResult, error)
}

type service struct {
	repo   repository.Economy
	tables *tables.Tables
	bus    event.Bus
	now    func() time.Time
}

// NewService creates a new economy service
func NewService(repo repository.Economy, tb *tables.Tables, bus event.Bus) Service {
	return &service{
		repo:   repo,
		tables: tb,
		bus:    bus,
		now:    time.Now,
	}
}

// beginLocked opens a transaction and locks the player row
func (s *service) beginLocked(ctx context.Context, playerID int64) (repository.Tx, *domain.Player, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		repository.SafeRollback(ctx, tx)
		return nil, nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	return tx, player, nil
}

// commit applies delta, records it in the ledger and commits
func (s *service) commit(ctx context.Context, tx repository.Tx, entry *domain.LedgerEntry, delta domain.Delta) error {
	if err := tx.ApplyDelta(ctx, entry.PlayerID, delta); err != nil {
		return fmt.Errorf(ErrMsgApplyDeltaFailed, err)
	}
	entry.SoftDelta = delta.Soft
	entry.HardDelta = delta.Hard
	if err := tx.InsertLedgerEntry(ctx, entry); err != nil {
		return fmt.Errorf(ErrMsgInsertLedgerFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}
