package economy

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgApplyDeltaFailed        = "failed to apply balance change: %w"
	ErrMsgSetTierFailed           = "failed to set equipment tier: %w"
	ErrMsgInsertLedgerFailed      = "failed to insert ledger entry: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgAmountOverflowFmt       = "amount %d overflows: %w"
)

// Log messages
const (
	LogMsgSellCalled        = "Sell called"
	LogMsgResourceSold      = "Resource sold"
	LogMsgExchangeCalled    = "Exchange called"
	LogMsgCurrencyExchanged = "Currency exchanged"
	LogMsgUpgradeCalled     = "UpgradeEquipment called"
	LogMsgEquipmentUpgraded = "Equipment upgraded"
)
