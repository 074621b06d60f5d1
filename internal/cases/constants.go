package cases

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgReserveFailed           = "failed to reserve collectible: %w"
	ErrMsgApplyDeltaFailed        = "failed to apply balance change: %w"
	ErrMsgInsertLedgerFailed      = "failed to insert ledger entry: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgListCollectiblesFailed  = "failed to list collectibles: %w"
	ErrMsgPoolStockFailed         = "failed to read pool stock: %w"
)

// Log messages
const (
	LogMsgCaseOpened    = "Case opened"
	LogMsgPoolExhausted = "Collectible pool exhausted"
)
