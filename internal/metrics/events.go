package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/event"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.MineCompleted,
		event.ResourceSold,
		event.CurrencyExchanged,
		event.EquipmentUpgraded,
		event.CaseOpened,
		event.CollectibleExhausted,
		event.LadderStarted,
		event.LadderFinished,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.MineCompleted:
		p, err := event.DecodePayload[domain.MineCompletedPayload](evt.Payload)
		if err != nil {
			return err
		}
		tier := strconv.Itoa(p.Tier)
		MinesTotal.WithLabelValues(tier).Inc()
		MinedValue.Add(float64(p.TotalValue))
		if p.Capped {
			DropsCapped.WithLabelValues(tier).Inc()
		}

	case event.ResourceSold:
		p, err := event.DecodePayload[domain.ResourceSoldPayload](evt.Payload)
		if err != nil {
			return err
		}
		ResourcesSold.WithLabelValues(string(p.Resource)).Add(float64(p.Quantity))
		McoinEarned.Add(float64(p.SoftGained))

	case event.CurrencyExchanged:
		p, err := event.DecodePayload[domain.CurrencyExchangedPayload](evt.Payload)
		if err != nil {
			return err
		}
		StarsExchanged.WithLabelValues(string(p.Direction)).Add(float64(p.Stars))

	case event.EquipmentUpgraded:
		p, err := event.DecodePayload[domain.EquipmentUpgradedPayload](evt.Payload)
		if err != nil {
			return err
		}
		EquipmentUpgrades.WithLabelValues(strconv.Itoa(p.NewTier), string(p.Method)).Inc()

	case event.CaseOpened:
		p, err := event.DecodePayload[domain.CaseOpenedPayload](evt.Payload)
		if err != nil {
			return err
		}
		CasesOpened.WithLabelValues(p.Case, p.Prize).Inc()
		CaseStarsPaid.Add(float64(p.StarsWon))

	case event.CollectibleExhausted:
		p, err := event.DecodePayload[domain.CollectibleExhaustedPayload](evt.Payload)
		if err != nil {
			return err
		}
		CollectibleExhausted.WithLabelValues(p.Kind).Inc()

	case event.LadderStarted:
		p, err := event.DecodePayload[domain.LadderStartedPayload](evt.Payload)
		if err != nil {
			return err
		}
		LadderStarted.Inc()
		LadderStaked.Add(float64(p.Stake))

	case event.LadderFinished:
		p, err := event.DecodePayload[domain.LadderFinishedPayload](evt.Payload)
		if err != nil {
			return err
		}
		LadderFinished.WithLabelValues(string(p.Outcome)).Inc()
		LadderPaidOut.Add(float64(p.Payout))
	}
	return nil
}
