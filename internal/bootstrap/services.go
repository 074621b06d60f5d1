package bootstrap

import (
	"log/slog"
	"time"

	"github.com/osse101/MinesBot_Go/internal/cases"
	"github.com/osse101/MinesBot_Go/internal/config"
	"github.com/osse101/MinesBot_Go/internal/cooldown"
	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/economy"
	"github.com/osse101/MinesBot_Go/internal/event"
	"github.com/osse101/MinesBot_Go/internal/ladder"
	"github.com/osse101/MinesBot_Go/internal/mining"
	"github.com/osse101/MinesBot_Go/internal/player"
	"github.com/osse101/MinesBot_Go/internal/server"
	"github.com/osse101/MinesBot_Go/internal/tables"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

// NewCooldownChecker builds the checker for timed actions from the tables
func NewCooldownChecker(cfg *config.Config, tb *tables.Tables) *cooldown.Checker {
	if cfg.DevMode {
		slog.Warn(LogMsgDevModeEnabled)
	}
	return cooldown.NewChecker(cooldown.Config{
		DevMode:   cfg.DevMode,
		Cooldowns: map[string]time.Duration{domain.ActionMine: tb.MineCooldown},
	})
}

// InitializeServices wires the game services the HTTP layer calls
func InitializeServices(cfg *config.Config, repos *Repositories, tb *tables.Tables, bus event.Bus) server.Services {
	checker := NewCooldownChecker(cfg, tb)
	rng := utils.DefaultRNG()

	return server.Services{
		Player: player.NewService(repos.Player, tb, checker, player.CacheConfig{
			Size: cfg.IdentityCacheSize,
			TTL:  cfg.IdentityCacheTTL,
		}),
		Mining:  mining.NewService(repos.Mining, tb, rng, checker, bus),
		Economy: economy.NewService(repos.Economy, tb, bus),
		Ladder:  ladder.NewService(repos.Ladder, tb, rng, bus),
		Cases:   cases.NewService(repos.Cases, tb, rng, bus),
	}
}
