package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "mine.completed")
const (
	// EventTypeMineCompleted is published after a dig is committed
	EventTypeMineCompleted = "mine.completed"

	// EventTypeResourceSold is published after resources are sold for mcoin
	EventTypeResourceSold = "resource.sold"

	// EventTypeCurrencyExchanged is published after an mcoin/stars exchange
	EventTypeCurrencyExchanged = "currency.exchanged"

	// EventTypeEquipmentUpgraded is published after a pickaxe upgrade
	EventTypeEquipmentUpgraded = "equipment.upgraded"

	// EventTypeCaseOpened is published after a case opening is committed
	EventTypeCaseOpened = "case.opened"

	// EventTypeCollectibleExhausted is published when a premium case hits an empty pool
	EventTypeCollectibleExhausted = "collectible.exhausted"

	// EventTypeLadderStarted is published when a ladder stake is placed
	EventTypeLadderStarted = "ladder.started"

	// EventTypeLadderFinished is published when a session ends by loss, cash-out or completion
	EventTypeLadderFinished = "ladder.finished"
)
