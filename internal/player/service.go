package player

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MinesBot_Go/internal/cooldown"
	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/repository"
	"github.com/osse101/MinesBot_Go/internal/tables"
)

// Service resolves callers to players and builds profiles
type Service interface {
	// EnsurePlayer returns the player id for identity, registering it on first sight
	EnsurePlayer(ctx context.Context, identity domain.Identity) (int64, error)
	GetProfile(ctx context.Context, playerID int64) (*domain.Profile, error)
	GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error)
	CacheStats() CacheStats
}

type service struct {
	repo     repository.Player
	tables   *tables.Tables
	cooldown *cooldown.Checker
	cache    *identityCache
	now      func() time.Time
}

// NewService creates a new player service
func NewService(repo repository.Player, tb *tables.Tables, checker *cooldown.Checker, cacheCfg CacheConfig) Service {
	return &service{
		repo:     repo,
		tables:   tb,
		cooldown: checker,
		cache:    newIdentityCache(cacheCfg),
		now:      time.Now,
	}
}

func (s *service) EnsurePlayer(ctx context.Context, identity domain.Identity) (int64, error) {
	if identity.TelegramID <= 0 {
		return 0, fmt.Errorf("%w: telegram id %d", domain.ErrPlayerNotFound, identity.TelegramID)
	}

	log := logger.FromContext(ctx)
	if id, ok := s.cache.Get(identity.TelegramID); ok {
		log.Debug(LogMsgPlayerCacheHit, "telegram_id", identity.TelegramID, "player_id", id)
		return id, nil
	}

	p, err := s.repo.UpsertPlayer(ctx, identity)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgUpsertPlayerFailed, err)
	}
	s.cache.Set(identity.TelegramID, p.ID)
	log.Debug(LogMsgPlayerRegistered, "telegram_id", identity.TelegramID, "player_id", p.ID)
	return p.ID, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error) {
	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	return p, nil
}

func (s *service) GetProfile(ctx context.Context, playerID int64) (*domain.Profile, error) {
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.HasLadderSession(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLadderLookupFailed, err)
	}

	profile := &domain.Profile{
		Player:         p,
		MineCooldownMS: s.cooldown.Remaining(domain.ActionMine, p.LastMineAt, s.now()).Milliseconds(),
		LadderActive:   active,
	}
	if p.EquipmentTier < domain.MaxEquipmentTier {
		if cost, err := s.tables.UpgradeCost(p.EquipmentTier + 1); err == nil {
			profile.NextUpgradeCost = &cost
		}
	}
	return profile, nil
}

func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}
