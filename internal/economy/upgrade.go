package economy

import (
	"context"
	"fmt"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/event"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/repository"
)

// QuoteUpgrade prices the player's next pickaxe tier in both currencies
func (s *service) QuoteUpgrade(_ context.Context, player *domain.Player) (*domain.UpgradeQuote, error) {
	if player.EquipmentTier >= domain.MaxEquipmentTier {
		return nil, domain.ErrMaxLevel
	}
	next := player.EquipmentTier + 1
	cost, err := s.tables.UpgradeCost(next)
	if err != nil {
		return nil, err
	}
	return &domain.UpgradeQuote{
		CurrentTier: player.EquipmentTier,
		NextTier:    next,
		MoneyCost:   cost,
		StarsCost:   s.tables.StarsFor(cost),
	}, nil
}

// UpgradeEquipment buys the next pickaxe tier with mcoin or stars
func (s *service) UpgradeEquipment(ctx context.Context, playerID int64, method string) (*domain.UpgradeResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgUpgradeCalled, "player_id", playerID, "method", method)

	pm := domain.PaymentMethod(method)
	if pm == "" {
		pm = domain.PaymentSoft
	}
	if pm != domain.PaymentSoft && pm != domain.PaymentHard {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPaymentMethod, method)
	}

	tx, player, err := s.beginLocked(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	quote, err := s.QuoteUpgrade(ctx, player)
	if err != nil {
		return nil, err
	}

	var delta domain.Delta
	cost := quote.MoneyCost
	if pm == domain.PaymentHard {
		cost = quote.StarsCost
		if player.HardCurrency < cost {
			return nil, domain.ErrNotEnoughHardCurrency
		}
		delta.Hard = -cost
	} else {
		if player.SoftCurrency < cost {
			return nil, domain.ErrNotEnoughSoftCurrency
		}
		delta.Soft = -cost
	}

	if err := tx.SetEquipmentTier(ctx, playerID, quote.NextTier); err != nil {
		return nil, fmt.Errorf(ErrMsgSetTierFailed, err)
	}

	now := s.now()
	entry := &domain.LedgerEntry{
		PlayerID:  playerID,
		Kind:      domain.LedgerUpgrade,
		Meta:      map[string]interface{}{"from": quote.CurrentTier, "to": quote.NextTier, "method": pm},
		CreatedAt: now,
	}
	if err := s.commit(ctx, tx, entry, delta); err != nil {
		return nil, err
	}

	event.Emit(ctx, s.bus, event.New(event.EquipmentUpgraded, domain.EquipmentUpgradedPayload{
		PlayerID:  playerID,
		NewTier:   quote.NextTier,
		Method:    pm,
		Cost:      cost,
		Timestamp: now.Unix(),
	}, now))

	log.Info(LogMsgEquipmentUpgraded, "player_id", playerID, "tier", quote.NextTier, "method", pm, "cost", cost)
	return &domain.UpgradeResult{
		NewTier:      quote.NextTier,
		Method:       pm,
		Cost:         cost,
		SoftCurrency: player.SoftCurrency + delta.Soft,
		HardCurrency: player.HardCurrency + delta.Hard,
	}, nil
}
