package tables

// ProbabilityTolerance bounds the allowed drift of a prize table sum from 1.0
const ProbabilityTolerance = 1e-6

// Error messages
const (
	ErrMsgReadTablesFailed      = "failed to read economy tables %s: %w"
	ErrMsgParseTablesFailed     = "failed to parse economy tables: %w"
	ErrMsgInvalidTables         = "invalid economy tables: %w"
	ErrMsgMissingResourceFmt    = "missing resource table %q"
	ErrMsgUnknownResourceFmt    = "unknown resource %q"
	ErrMsgProbabilitySumFmt     = "case %q probabilities sum to %f, want 1"
	ErrMsgPrizeKindFmt          = "case %q prize %q must pay stars or grant a collectible, not both or neither"
	ErrMsgDuplicatePrizeFmt     = "case %q has duplicate prize %q"
	ErrMsgDuplicateStakeFmt     = "duplicate ladder stake %d"
	ErrMsgNoCasesConfigured     = "no cases configured"
)

// Log messages
const (
	LogMsgTablesLoaded      = "Economy tables loaded"
	LogMsgTablesDefaultUsed = "No economy tables file configured, using built-in defaults"
)
