package mining

// MaxTopUpIterations bounds the greedy top-up loop of Clamp
const MaxTopUpIterations = 100000

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgGenerateDropFailed      = "failed to generate drop: %w"
	ErrMsgApplyDropFailed         = "failed to apply drop: %w"
	ErrMsgSetLastMineFailed       = "failed to set last mine time: %w"
	ErrMsgInsertLedgerFailed      = "failed to insert ledger entry: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgMineCalled    = "Mine called"
	LogMsgMineCompleted = "Mine completed"
)
