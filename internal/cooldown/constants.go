package cooldown

// Log messages
const (
	LogMsgDevModeBypass  = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgCooldownActive = "Action rejected, still on cooldown"
)

// ErrOnCooldown.Error formats, picked by the largest non-zero unit
const (
	ErrFmtCooldownWithHours   = "%s available again in %dh %dm"
	ErrFmtCooldownWithMinutes = "%s available again in %dm %ds"
	ErrFmtCooldownSecondsOnly = "%s available again in %ds"
)
