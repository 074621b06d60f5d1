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

// Sell converts held ore into mcoin at the table unit value. With all set,
// the whole stock is sold and quantity is ignored.
func (s *service) Sell(ctx context.Context, playerID int64, resource string, quantity int64, all bool) (*domain.SellResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSellCalled, "player_id", playerID, "resource", resource, "quantity", quantity, "all", all)

	res, ok := domain.ParseResource(resource)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidResource, resource)
	}
	if !all && quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, quantity)
	}

	tx, player, err := s.beginLocked(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	have := player.Resource(res)
	if all {
		if have == 0 {
			return nil, domain.ErrNothingToSell
		}
		quantity = have
	} else if have < quantity {
		return nil, domain.InsufficientResourceError{Resource: res, Have: have, Requested: quantity}
	}

	gained, ok := utils.SafeMultiply(quantity, s.tables.UnitValue(res))
	if !ok {
		return nil, fmt.Errorf(ErrMsgAmountOverflowFmt, quantity, domain.ErrInvalidAmount)
	}

	now := s.now()
	delta := domain.Delta{Soft: gained, Resources: map[domain.Resource]int64{res: -quantity}}
	entry := &domain.LedgerEntry{
		PlayerID:  playerID,
		Kind:      domain.LedgerSell,
		Meta:      map[string]interface{}{"resource": res, "quantity": quantity},
		CreatedAt: now,
	}
	if err := s.commit(ctx, tx, entry, delta); err != nil {
		return nil, err
	}

	event.Emit(ctx, s.bus, event.New(event.ResourceSold, domain.ResourceSoldPayload{
		PlayerID:   playerID,
		Resource:   res,
		Quantity:   quantity,
		SoftGained: gained,
		Timestamp:  now.Unix(),
	}, now))

	log.Info(LogMsgResourceSold, "player_id", playerID, "resource", res, "quantity", quantity, "gained", gained)
	return &domain.SellResult{
		Resource:     res,
		Quantity:     quantity,
		SoftGained:   gained,
		SoftCurrency: player.SoftCurrency + gained,
	}, nil
}
