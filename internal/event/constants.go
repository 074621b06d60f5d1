package event

// EventSchemaVersion is stamped on every event. Bump it when a payload
// struct in domain changes shape.
const EventSchemaVersion = "1"

// LogMsgEventPublishFailed is logged when a subscriber fails after the
// action already committed
const LogMsgEventPublishFailed = "Event publish failed"

// ErrFmtHandlersFailed wraps the joined subscriber errors of one Publish
const ErrFmtHandlersFailed = "%d handlers failed for %s: %w"
