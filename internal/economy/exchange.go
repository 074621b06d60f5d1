package economy

import (
	"context"
	"fmt"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/event"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/repository"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

// Exchange trades stars against mcoin at the table rate. amount is always
// counted in stars.
func (s *service) Exchange(ctx context.Context, playerID int64, direction string, amount int64) (*domain.ExchangeResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgExchangeCalled, "player_id", playerID, "direction", direction, "amount", amount)

	dir := domain.ExchangeDirection(direction)
	if dir != domain.ExchangeSoftToHard && dir != domain.ExchangeHardToSoft {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDirection, direction)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	mcoin, ok := utils.SafeMultiply(amount, s.tables.ExchangeRate)
	if !ok {
		return nil, fmt.Errorf(ErrMsgAmountOverflowFmt, amount, domain.ErrInvalidAmount)
	}

	tx, player, err := s.beginLocked(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	var delta domain.Delta
	switch dir {
	case domain.ExchangeSoftToHard:
		if player.SoftCurrency < mcoin {
			return nil, domain.ErrNotEnoughSoftCurrency
		}
		delta = domain.Delta{Soft: -mcoin, Hard: amount}
	default:
		if player.HardCurrency < amount {
			return nil, domain.ErrNotEnoughHardCurrency
		}
		delta = domain.Delta{Soft: mcoin, Hard: -amount}
	}

	now := s.now()
	entry := &domain.LedgerEntry{
		PlayerID:  playerID,
		Kind:      domain.LedgerExchange,
		Meta:      map[string]interface{}{"direction": dir, "rate": s.tables.ExchangeRate},
		CreatedAt: now,
	}
	if err := s.commit(ctx, tx, entry, delta); err != nil {
		return nil, err
	}

	event.Emit(ctx, s.bus, event.New(event.CurrencyExchanged, domain.CurrencyExchangedPayload{
		PlayerID:  playerID,
		Direction: dir,
		Stars:     amount,
		Mcoin:     mcoin,
		Timestamp: now.Unix(),
	}, now))

	log.Info(LogMsgCurrencyExchanged, "player_id", playerID, "direction", dir, "stars", amount, "mcoin", mcoin)
	return &domain.ExchangeResult{
		Direction:    dir,
		Stars:        amount,
		Mcoin:        mcoin,
		SoftCurrency: player.SoftCurrency + delta.Soft,
		HardCurrency: player.HardCurrency + delta.Hard,
	}, nil
}
