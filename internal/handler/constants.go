package handler

// Request headers set by the upstream gateway
const (
	HeaderTelegramUserID    = "X-Telegram-User-ID"
	HeaderTelegramUsername  = "X-Telegram-Username"
	HeaderTelegramFirstName = "X-Telegram-First-Name"
)

// Codes produced by the request layer itself. Service failures carry their
// codes from domain.ErrorCode.
const (
	CodeUnauthorized = "unauthorized"
	CodeRateLimited  = "rate_limited"
)

// SellAll is the sell amount meaning the whole stack
const SellAll = "all"

// Log messages
const (
	LogMsgRequestDecodeFailed  = "Failed to decode request body"
	LogMsgRequestInvalid       = "Request failed validation"
	LogMsgServiceRejected      = "Request rejected"
	LogMsgServiceFailed        = "Request failed"
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgMissingPlayer        = "Handler reached without a resolved player"
	LogMsgReadinessFailed      = "Readiness check failed"

	LogMsgMineCompleted     = "Dig completed"
	LogMsgResourceSold      = "Resource sold"
	LogMsgCurrencyExchanged = "Currency exchanged"
	LogMsgEquipmentUpgraded = "Equipment upgraded"
	LogMsgCaseOpened        = "Case opened"
	LogMsgLadderStarted     = "Ladder started"
	LogMsgLadderPicked      = "Ladder pick resolved"
	LogMsgLadderCashedOut   = "Ladder cashed out"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
)
