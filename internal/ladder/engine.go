package ladder

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/tables"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

// Engine is the pure ladder state machine. It owns no storage; the service
// loads a session under the player lock, runs one transition and persists
// the result.
type Engine struct {
	table tables.LadderTable
	rng   utils.RandomSource
}

// NewEngine creates a ladder engine. A nil rng uses the crypto source.
func NewEngine(table tables.LadderTable, rng utils.RandomSource) *Engine {
	if rng == nil {
		rng = utils.DefaultRNG()
	}
	return &Engine{table: table, rng: rng}
}

// BrokenMap draws the losing slots of every level up front. Level L gets L
// distinct slot indices, sampled without replacement and sorted.
func (e *Engine) BrokenMap() map[int][]int {
	broken := make(map[int][]int, e.table.Levels)
	for level := 1; level <= e.table.Levels; level++ {
		broken[level] = e.sample(level)
	}
	return broken
}

// sample runs a partial Fisher-Yates shuffle over the slots and keeps the first k
func (e *Engine) sample(k int) []int {
	slots := make([]int, e.table.Slots)
	for i := range slots {
		slots[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + e.rng.IntN(len(slots)-i)
		slots[i], slots[j] = slots[j], slots[i]
	}
	picked := append([]int(nil), slots[:k]...)
	sort.Ints(picked)
	return picked
}

// NewSession starts a session at level 1 with nothing cleared
func (e *Engine) NewSession(playerID, stake int64, now time.Time) *domain.LadderSession {
	return &domain.LadderSession{
		PlayerID:      playerID,
		Stake:         stake,
		CurrentLevel:  1,
		ClearedLevels: 0,
		BrokenMap:     e.BrokenMap(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ValidColumn reports whether column is a slot index
func (e *Engine) ValidColumn(column int) bool {
	return column >= 0 && column < e.table.Slots
}

// Pick resolves one choice on the session's current level. On advanced the
// session is updated in place; on lost or finished the caller deletes it.
// The returned payout is non-zero only when finished.
func (e *Engine) Pick(session *domain.LadderSession, column int) (domain.PickOutcome, int64, error) {
	if !e.ValidColumn(column) {
		return "", 0, fmt.Errorf("%w: %d", domain.ErrBadColumn, column)
	}

	for _, slot := range session.BrokenMap[session.CurrentLevel] {
		if slot == column {
			return domain.PickLost, 0, nil
		}
	}

	session.ClearedLevels++
	if session.ClearedLevels >= e.table.Levels {
		return domain.PickFinished, e.table.Payout(session.Stake, session.ClearedLevels), nil
	}
	session.CurrentLevel++
	return domain.PickAdvanced, 0, nil
}

// Cashout returns the payout for banking the cleared levels
func (e *Engine) Cashout(session *domain.LadderSession) (int64, error) {
	if session.ClearedLevels < 1 {
		return 0, domain.ErrNothingToCashout
	}
	return e.table.Payout(session.Stake, session.ClearedLevels), nil
}

// Snapshot is the client view of a session. Broken slots are not included.
func (e *Engine) Snapshot(session *domain.LadderSession) *domain.LadderSnapshot {
	snap := &domain.LadderSnapshot{
		Stake:           session.Stake,
		Level:           session.CurrentLevel,
		ClearedLevels:   session.ClearedLevels,
		Multiplier:      e.table.Multiplier(session.ClearedLevels),
		PotentialPayout: e.table.Payout(session.Stake, session.ClearedLevels),
	}
	if session.ClearedLevels < e.table.Levels {
		snap.NextMultiplier = e.table.Multiplier(session.ClearedLevels + 1)
	}
	return snap
}

// Multiplier returns the payout multiplier after cleared levels
func (e *Engine) Multiplier(cleared int) float64 {
	return e.table.Multiplier(cleared)
}
