package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MinesBot_Go/internal/event"
	"github.com/osse101/MinesBot_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and subscribes the
// Prometheus collector to every game event.
func InitializeEventSystem() (event.Bus, error) {
	eventBus := event.NewMemoryBus()

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus, nil
}
