package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/MinesBot_Go/internal/config"
	"github.com/osse101/MinesBot_Go/internal/tables"
)

// LoadEconomyTables resolves the economy tables for this process.
// The default config path may be absent, in which case the compiled-in
// tables are used; an explicitly configured path must exist.
// MINE_COOLDOWN, when set, replaces the tables' cooldown.
func LoadEconomyTables(cfg *config.Config) (*tables.Tables, error) {
	path := cfg.EconomyConfigPath
	if path == config.DefaultEconomyConfigPath {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			slog.Info(LogMsgEconomyFileMissing, "path", path)
			path = ""
		}
	}

	tb, err := tables.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadEconomy, err)
	}

	if cfg.MineCooldown > 0 {
		tb.MineCooldown = cfg.MineCooldown
		slog.Info(LogMsgMineCooldownOverride, "cooldown", cfg.MineCooldown)
	}

	if err := tb.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidEconomy, err)
	}
	return tb, nil
}
