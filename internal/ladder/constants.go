package ladder

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgGetSessionFailed        = "failed to get ladder session: %w"
	ErrMsgCreateSessionFailed     = "failed to create ladder session: %w"
	ErrMsgUpdateSessionFailed     = "failed to update ladder session: %w"
	ErrMsgDeleteSessionFailed     = "failed to delete ladder session: %w"
	ErrMsgApplyDeltaFailed        = "failed to apply balance change: %w"
	ErrMsgInsertLedgerFailed      = "failed to insert ledger entry: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgLadderStarted  = "Ladder session started"
	LogMsgLadderPick     = "Ladder pick"
	LogMsgLadderCashout  = "Ladder cashed out"
	LogMsgLadderFinished = "Ladder session finished"
)
