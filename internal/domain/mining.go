package domain

import "time"

// Drop is the resource yield of a single mining action
type Drop map[Resource]int64

// Clone returns an independent copy of the drop
func (d Drop) Clone() Drop {
	out := make(Drop, len(d))
	for r, q := range d {
		out[r] = q
	}
	return out
}

// ActionMine is the cooldown key for digging
const ActionMine = "mine"

// MineResult is returned by a successful dig
type MineResult struct {
	Tier       int       `json:"tier"`
	Drop       Drop      `json:"drop"`
	TotalValue int64     `json:"total_value"`
	ValueCap   int64     `json:"value_cap"`
	NextMineAt time.Time `json:"next_mine_at"`
}
