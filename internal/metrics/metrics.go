package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Mining and shop metrics
var (
	MinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMinesTotal,
			Help: HelpTextMinesTotal,
		},
		[]string{LabelTier},
	)

	MinedValue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMinedValue,
			Help: HelpTextMinedValue,
		},
	)

	DropsCapped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsCapped,
			Help: HelpTextDropsCapped,
		},
		[]string{LabelTier},
	)

	ResourcesSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesSold,
			Help: HelpTextResourcesSold,
		},
		[]string{LabelResource},
	)

	McoinEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMcoinEarned,
			Help: HelpTextMcoinEarned,
		},
	)

	StarsExchanged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStarsExchanged,
			Help: HelpTextStarsExchanged,
		},
		[]string{LabelDirection},
	)

	EquipmentUpgrades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEquipmentUpgrades,
			Help: HelpTextEquipmentUpgrades,
		},
		[]string{LabelTier, LabelPayment},
	)
)

// Case metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase, LabelPrize},
	)

	CaseStarsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCaseStarsPaid,
			Help: HelpTextCaseStarsPaid,
		},
	)

	CollectibleExhausted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCollectibleExhausted,
			Help: HelpTextCollectibleExhausted,
		},
		[]string{LabelKind},
	)
)

// Ladder metrics
var (
	LadderStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLadderStarted,
			Help: HelpTextLadderStarted,
		},
	)

	LadderStaked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLadderStaked,
			Help: HelpTextLadderStaked,
		},
	)

	LadderFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLadderFinished,
			Help: HelpTextLadderFinished,
		},
		[]string{LabelOutcome},
	)

	LadderPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLadderPaidOut,
			Help: HelpTextLadderPaidOut,
		},
	)
)
