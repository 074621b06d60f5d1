package ladder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/tables"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

func newTestEngine(seed uint64) *Engine {
	return NewEngine(tables.Default().Ladder, utils.NewSeededRNG(seed))
}

// safeColumn returns a slot that is not broken on the session's current level
func safeColumn(t *testing.T, s *domain.LadderSession) int {
	t.Helper()
	broken := make(map[int]bool)
	for _, b := range s.BrokenMap[s.CurrentLevel] {
		broken[b] = true
	}
	for c := 0; c < 8; c++ {
		if !broken[c] {
			return c
		}
	}
	t.Fatalf("level %d has no safe slot", s.CurrentLevel)
	return -1
}

func TestBrokenMap_Shape(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		broken := newTestEngine(seed).BrokenMap()

		require.Len(t, broken, 7)
		for level := 1; level <= 7; level++ {
			slots := broken[level]
			require.Len(t, slots, level, "seed %d level %d", seed, level)
			for i, slot := range slots {
				assert.GreaterOrEqual(t, slot, 0)
				assert.Less(t, slot, 8)
				if i > 0 {
					assert.Greater(t, slot, slots[i-1], "sorted and distinct")
				}
			}
		}
	}
}

func TestBrokenMap_SlotsAreUniform(t *testing.T) {
	engine := newTestEngine(99)
	counts := make([]int, 8)
	const runs = 8000
	for i := 0; i < runs; i++ {
		for _, slot := range engine.BrokenMap()[1] {
			counts[slot]++
		}
	}
	for slot, n := range counts {
		assert.InDelta(t, runs/8, n, runs/8*0.15, "slot %d", slot)
	}
}

func TestMultiplierSequence(t *testing.T) {
	engine := newTestEngine(1)
	want := []float64{0, 1.14, 1.28, 1.42, 1.56, 1.70, 1.84, 1.98}
	for n, m := range want {
		assert.InDelta(t, m, engine.Multiplier(n), 1e-9, "cleared %d", n)
	}
}

func TestNewSession(t *testing.T) {
	now := time.Now()
	s := newTestEngine(1).NewSession(3, 50, now)

	assert.Equal(t, int64(50), s.Stake)
	assert.Equal(t, 1, s.CurrentLevel)
	assert.Equal(t, 0, s.ClearedLevels)
	assert.Len(t, s.BrokenMap, 7)
	assert.Equal(t, now, s.CreatedAt)
}

func TestPick_Lost(t *testing.T) {
	engine := newTestEngine(5)
	s := engine.NewSession(1, 100, time.Now())
	column := s.BrokenMap[1][0]

	outcome, payout, err := engine.Pick(s, column)

	require.NoError(t, err)
	assert.Equal(t, domain.PickLost, outcome)
	assert.Zero(t, payout)
	assert.Equal(t, 0, s.ClearedLevels)
}

func TestPick_AdvanceToFinish(t *testing.T) {
	engine := newTestEngine(11)
	s := engine.NewSession(1, 100, time.Now())

	for level := 1; level < 7; level++ {
		outcome, payout, err := engine.Pick(s, safeColumn(t, s))
		require.NoError(t, err)
		assert.Equal(t, domain.PickAdvanced, outcome)
		assert.Zero(t, payout)
		assert.Equal(t, level, s.ClearedLevels)
		assert.Equal(t, level+1, s.CurrentLevel)
	}

	outcome, payout, err := engine.Pick(s, safeColumn(t, s))
	require.NoError(t, err)
	assert.Equal(t, domain.PickFinished, outcome)
	assert.Equal(t, 7, s.ClearedLevels)
	assert.Equal(t, int64(198), payout)
}

func TestPick_BadColumn(t *testing.T) {
	engine := newTestEngine(1)
	s := engine.NewSession(1, 10, time.Now())

	for _, column := range []int{-1, 8, 100} {
		_, _, err := engine.Pick(s, column)
		assert.ErrorIs(t, err, domain.ErrBadColumn)
	}
	assert.Equal(t, 1, s.CurrentLevel)
}

func TestCashout(t *testing.T) {
	engine := newTestEngine(1)
	s := &domain.LadderSession{Stake: 25, CurrentLevel: 1}

	_, err := engine.Cashout(s)
	assert.ErrorIs(t, err, domain.ErrNothingToCashout)

	tests := []struct {
		cleared int
		stake   int64
		want    int64
	}{
		{1, 25, 28},   // 28.5
		{2, 50, 64},   // 64.0
		{3, 10, 14},   // 14.2
		{7, 500, 990}, // 990.0
	}
	for _, tt := range tests {
		s := &domain.LadderSession{Stake: tt.stake, ClearedLevels: tt.cleared, CurrentLevel: tt.cleared + 1}
		payout, err := engine.Cashout(s)
		require.NoError(t, err)
		assert.Equal(t, tt.want, payout, "cleared %d stake %d", tt.cleared, tt.stake)
	}
}

func TestSnapshot(t *testing.T) {
	engine := newTestEngine(1)
	s := &domain.LadderSession{Stake: 100, CurrentLevel: 3, ClearedLevels: 2, BrokenMap: map[int][]int{1: {0}}}

	snap := engine.Snapshot(s)

	assert.Equal(t, 3, snap.Level)
	assert.InDelta(t, 1.28, snap.Multiplier, 1e-9)
	assert.InDelta(t, 1.42, snap.NextMultiplier, 1e-9)
	assert.Equal(t, int64(128), snap.PotentialPayout)

	fresh := engine.Snapshot(&domain.LadderSession{Stake: 100, CurrentLevel: 1})
	assert.Zero(t, fresh.Multiplier)
	assert.InDelta(t, 1.14, fresh.NextMultiplier, 1e-9)
	assert.Zero(t, fresh.PotentialPayout)
}
