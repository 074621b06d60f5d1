package domain

import "time"

// LadderSession is the persisted state of one player's ladder wager.
// BrokenMap is fixed at start and never regenerated.
type LadderSession struct {
	PlayerID      int64         `json:"player_id"`
	Stake         int64         `json:"stake"`
	CurrentLevel  int           `json:"current_level"`
	ClearedLevels int           `json:"cleared_levels"`
	BrokenMap     map[int][]int `json:"broken_map"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PickOutcome classifies the result of a ladder pick
type PickOutcome string

const (
	PickLost     PickOutcome = "lost"
	PickAdvanced PickOutcome = "advanced"
	PickFinished PickOutcome = "finished"

	// LadderCashedOut tags sessions ended by cash-out rather than a pick
	LadderCashedOut PickOutcome = "cashed_out"
)

// LadderSnapshot is the client view of an active session. Broken slots stay hidden.
type LadderSnapshot struct {
	Stake           int64   `json:"stake"`
	Level           int     `json:"level"`
	ClearedLevels   int     `json:"cleared_levels"`
	Multiplier      float64 `json:"multiplier"`
	NextMultiplier  float64 `json:"next_multiplier"`
	PotentialPayout int64   `json:"potential_payout"`
	HardCurrency    int64   `json:"stars,omitempty"`
}

// LadderPickResult is returned by a pick. BrokenMap is revealed once the session ends.
type LadderPickResult struct {
	Outcome      PickOutcome     `json:"outcome"`
	Level        int             `json:"level"`
	Column       int             `json:"column"`
	Payout       int64           `json:"payout,omitempty"`
	Multiplier   float64         `json:"multiplier,omitempty"`
	Session      *LadderSnapshot `json:"session,omitempty"`
	BrokenMap    map[int][]int   `json:"broken_map,omitempty"`
	HardCurrency int64           `json:"stars"`
}

// LadderCashoutResult is returned by a successful cash-out
type LadderCashoutResult struct {
	Payout        int64         `json:"payout"`
	Multiplier    float64       `json:"multiplier"`
	ClearedLevels int           `json:"cleared_levels"`
	BrokenMap     map[int][]int `json:"broken_map"`
	HardCurrency  int64         `json:"stars"`
}
