package domain

import "time"

// Case kinds
const (
	CaseCheap   = "cheap"
	CasePremium = "premium"
)

// Collectible is a pooled item granted by a premium case
type Collectible struct {
	ID        int64      `json:"id"`
	Kind      string     `json:"kind"`
	Serial    string     `json:"serial"`
	OwnerID   *int64     `json:"owner_id,omitempty"`
	GrantedAt *time.Time `json:"granted_at,omitempty"`
}

// CaseResult is the prize of one case opening: either stars or a collectible
type CaseResult struct {
	Case         string       `json:"case"`
	Cost         int64        `json:"cost"`
	PrizeKey     string       `json:"prize"`
	PrizeName    string       `json:"prize_name"`
	Stars        int64        `json:"stars_won,omitempty"`
	Collectible  *Collectible `json:"collectible,omitempty"`
	HardCurrency int64        `json:"stars"`
}

// PoolStock is the number of ungranted collectibles of one kind
type PoolStock struct {
	Kind      string `json:"kind"`
	Available int64  `json:"available"`
}
