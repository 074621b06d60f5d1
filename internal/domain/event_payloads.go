package domain

// MineCompletedPayload is the event payload for mine.completed events
type MineCompletedPayload struct {
	PlayerID   int64 `json:"player_id"`
	Tier       int   `json:"tier"`
	Drop       Drop  `json:"drop"`
	TotalValue int64 `json:"total_value"`
	Capped     bool  `json:"capped"`
	Timestamp  int64 `json:"timestamp"`
}

// ResourceSoldPayload is the event payload for resource.sold events
type ResourceSoldPayload struct {
	PlayerID   int64    `json:"player_id"`
	Resource   Resource `json:"resource"`
	Quantity   int64    `json:"quantity"`
	SoftGained int64    `json:"mcoin_gained"`
	Timestamp  int64    `json:"timestamp"`
}

// CurrencyExchangedPayload is the event payload for currency.exchanged events
type CurrencyExchangedPayload struct {
	PlayerID  int64             `json:"player_id"`
	Direction ExchangeDirection `json:"direction"`
	Stars     int64             `json:"stars_amount"`
	Mcoin     int64             `json:"mcoin_amount"`
	Timestamp int64             `json:"timestamp"`
}

// EquipmentUpgradedPayload is the event payload for equipment.upgraded events
type EquipmentUpgradedPayload struct {
	PlayerID  int64         `json:"player_id"`
	NewTier   int           `json:"new_tier"`
	Method    PaymentMethod `json:"method"`
	Cost      int64         `json:"cost"`
	Timestamp int64         `json:"timestamp"`
}

// CaseOpenedPayload is the event payload for case.opened events
type CaseOpenedPayload struct {
	PlayerID  int64  `json:"player_id"`
	Case      string `json:"case"`
	Prize     string `json:"prize"`
	Cost      int64  `json:"cost"`
	StarsWon  int64  `json:"stars_won"`
	Timestamp int64  `json:"timestamp"`
}

// CollectibleExhaustedPayload is the event payload for collectible.exhausted events
type CollectibleExhaustedPayload struct {
	PlayerID  int64  `json:"player_id"`
	Kind      string `json:"kind"`
	Timestamp int64  `json:"timestamp"`
}

// LadderStartedPayload is the event payload for ladder.started events
type LadderStartedPayload struct {
	PlayerID  int64 `json:"player_id"`
	Stake     int64 `json:"stake"`
	Timestamp int64 `json:"timestamp"`
}

// LadderFinishedPayload is the event payload for ladder.finished events
type LadderFinishedPayload struct {
	PlayerID      int64       `json:"player_id"`
	Outcome       PickOutcome `json:"outcome"`
	Stake         int64       `json:"stake"`
	ClearedLevels int         `json:"cleared_levels"`
	Payout        int64       `json:"payout"`
	Timestamp     int64       `json:"timestamp"`
}
