package cooldown

import "time"

// Config holds the per-action cooldown windows
type Config struct {
	// DevMode disables every window, for local testing only
	DevMode bool

	// Cooldowns maps action names to their window. Actions not listed here
	// are never limited.
	Cooldowns map[string]time.Duration
}

// Window returns the configured window for action, or zero
func (c Config) Window(action string) time.Duration {
	return c.Cooldowns[action]
}
