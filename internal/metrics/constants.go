package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameMinesTotal           = "mines_total"
	MetricNameMinedValue           = "mined_value_mcoin_total"
	MetricNameDropsCapped          = "drops_capped_total"
	MetricNameResourcesSold        = "resources_sold_total"
	MetricNameMcoinEarned          = "mcoin_earned_total"
	MetricNameStarsExchanged       = "stars_exchanged_total"
	MetricNameEquipmentUpgrades    = "equipment_upgrades_total"
	MetricNameCasesOpened          = "cases_opened_total"
	MetricNameCaseStarsPaid        = "case_stars_paid_total"
	MetricNameCollectibleExhausted = "collectible_pool_exhausted_total"
	MetricNameLadderStarted        = "ladder_sessions_started_total"
	MetricNameLadderStaked         = "ladder_stars_staked_total"
	MetricNameLadderFinished       = "ladder_sessions_finished_total"
	MetricNameLadderPaidOut        = "ladder_stars_paid_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextMinesTotal           = "Total number of completed digs"
	HelpTextMinedValue           = "Total mcoin value of all mined drops"
	HelpTextDropsCapped          = "Total number of drops clamped to the tier value cap"
	HelpTextResourcesSold        = "Total units of ore sold"
	HelpTextMcoinEarned          = "Total mcoin earned from selling ore"
	HelpTextStarsExchanged       = "Total stars moved through currency exchange"
	HelpTextEquipmentUpgrades    = "Total number of pickaxe upgrades"
	HelpTextCasesOpened          = "Total number of cases opened"
	HelpTextCaseStarsPaid        = "Total stars paid out by cheap cases"
	HelpTextCollectibleExhausted = "Total premium case openings that hit an empty collectible pool"
	HelpTextLadderStarted        = "Total number of ladder sessions started"
	HelpTextLadderStaked         = "Total stars staked on the ladder"
	HelpTextLadderFinished       = "Total number of ladder sessions ended"
	HelpTextLadderPaidOut        = "Total stars paid out by the ladder"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelTier      = "tier"
	LabelResource  = "resource"
	LabelDirection = "direction"
	LabelPayment   = "payment"
	LabelCase      = "case"
	LabelPrize     = "prize"
	LabelKind      = "kind"
	LabelOutcome   = "outcome"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)

// unmatchedRoute labels requests that did not hit a registered route
const unmatchedRoute = "unmatched"
