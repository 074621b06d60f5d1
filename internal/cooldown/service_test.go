package cooldown

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesBot_Go/internal/domain"
)

func ptr(t time.Time) *time.Time { return &t }

func TestChecker_Check(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	checker := NewChecker(Config{Cooldowns: map[string]time.Duration{domain.ActionMine: 3 * time.Hour}})

	tests := []struct {
		name          string
		lastUsed      *time.Time
		wantErr       bool
		wantRemaining time.Duration
	}{
		{"never used", nil, false, 0},
		{"used just now", ptr(now), true, 3 * time.Hour},
		{"used an hour ago", ptr(now.Add(-time.Hour)), true, 2 * time.Hour},
		{"window exactly elapsed", ptr(now.Add(-3 * time.Hour)), false, 0},
		{"long ago", ptr(now.Add(-48 * time.Hour)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checker.Check(context.Background(), domain.ActionMine, tt.lastUsed, now)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var cdErr ErrOnCooldown
			require.ErrorAs(t, err, &cdErr)
			assert.Equal(t, tt.wantRemaining, cdErr.Remaining)
			assert.Equal(t, domain.ActionMine, cdErr.Action)
		})
	}
}

func TestChecker_DevModeBypasses(t *testing.T) {
	now := time.Now()
	checker := NewChecker(Config{DevMode: true})

	assert.NoError(t, checker.Check(context.Background(), domain.ActionMine, &now, now))
	assert.Zero(t, checker.Remaining(domain.ActionMine, &now, now))
	assert.Equal(t, now, checker.NextAllowed(domain.ActionMine, now))
}

func TestChecker_UnconfiguredActionIsNotLimited(t *testing.T) {
	now := time.Now()
	checker := NewChecker(Config{Cooldowns: map[string]time.Duration{domain.ActionMine: time.Hour}})

	assert.Zero(t, checker.Duration("sell"))
	assert.NoError(t, checker.Check(context.Background(), "sell", &now, now))
	assert.Equal(t, now, checker.NextAllowed("sell", now))
}

func TestErrOnCooldown(t *testing.T) {
	err := fmt.Errorf("mine: %w", ErrOnCooldown{Action: "mine", Remaining: 90*time.Minute + 1500*time.Microsecond})

	assert.True(t, errors.Is(err, domain.ErrOnCooldown))
	assert.True(t, errors.Is(err, ErrOnCooldown{}))
	assert.Equal(t, domain.CodeCooldown, domain.ErrorCode(err))

	var cdErr ErrOnCooldown
	require.ErrorAs(t, err, &cdErr)
	assert.Equal(t, int64(90*60*1000+2), cdErr.RemainingMS())
	assert.Equal(t, "mine available again in 1h 30m", cdErr.Error())

	assert.Equal(t, "mine available again in 2m 5s", ErrOnCooldown{Action: "mine", Remaining: 125 * time.Second}.Error())
	assert.Equal(t, "mine available again in 9s", ErrOnCooldown{Action: "mine", Remaining: 9 * time.Second}.Error())
}
