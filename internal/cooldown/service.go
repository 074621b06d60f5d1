package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % 60
	seconds := int(e.Remaining.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, hours, minutes)
	case minutes > 0:
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	default:
		return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
	}
}

// Is allows errors.Is() to match both ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Code implements domain.Coder
func (e ErrOnCooldown) Code() string {
	return domain.CodeCooldown
}

// RemainingMS is the remaining wait in whole milliseconds, rounded up
func (e ErrOnCooldown) RemainingMS() int64 {
	ms := e.Remaining.Milliseconds()
	if e.Remaining > time.Duration(ms)*time.Millisecond {
		ms++
	}
	return ms
}

// Checker evaluates cooldown windows against a last-used timestamp.
// Callers read the timestamp under the player row lock, so check and
// update happen in one transaction.
type Checker struct {
	cfg Config
}

// NewChecker creates a cooldown checker
func NewChecker(cfg Config) *Checker {
	return &Checker{cfg: cfg}
}

// Duration returns the configured window for action
func (c *Checker) Duration(action string) time.Duration {
	return c.cfg.Window(action)
}

// Remaining returns how long until action is allowed again. Zero means allowed.
func (c *Checker) Remaining(action string, lastUsed *time.Time, now time.Time) time.Duration {
	if c.cfg.DevMode || lastUsed == nil {
		return 0
	}
	elapsed := now.Sub(*lastUsed)
	window := c.Duration(action)
	if elapsed >= window {
		return 0
	}
	return window - elapsed
}

// Check returns ErrOnCooldown if action was used within its window
func (c *Checker) Check(ctx context.Context, action string, lastUsed *time.Time, now time.Time) error {
	if c.cfg.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action)
		return nil
	}

	remaining := c.Remaining(action, lastUsed, now)
	if remaining > 0 {
		logger.FromContext(ctx).Info(LogMsgCooldownActive, "action", action, "remaining", remaining)
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	return nil
}

// NextAllowed returns the time action becomes available after being used at usedAt
func (c *Checker) NextAllowed(action string, usedAt time.Time) time.Time {
	if c.cfg.DevMode {
		return usedAt
	}
	return usedAt.Add(c.Duration(action))
}
