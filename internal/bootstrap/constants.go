package bootstrap

// =============================================================================
// Economy Tables Messages
// =============================================================================

const (
	LogMsgEconomyFileMissing   = "Economy config file not found, using compiled-in defaults"
	LogMsgMineCooldownOverride = "Mine cooldown overridden from environment"
	LogMsgDevModeEnabled       = "DEV_MODE enabled: mining cooldown bypassed"

	ErrMsgFailedLoadEconomy = "failed to load economy tables"
	ErrMsgInvalidEconomy    = "invalid economy tables"
)

// =============================================================================
// Event System Messages
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
