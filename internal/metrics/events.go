package metrics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/event"
	"github.com/osse101/InvestSim_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range []event.Type{
		event.CatalogRefreshed,
		event.PurchaseCompleted,
		event.AccountCreated,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.CatalogRefreshedPayload:
		source, _ := evt.GetMetadataValue(domain.MetadataKeySource).(string)
		CatalogRefreshes.WithLabelValues(source).Inc()
		CatalogAssets.WithLabelValues(string(domain.KindCrypto)).Set(float64(payload.Cryptos))
		CatalogAssets.WithLabelValues(string(domain.KindStock)).Set(float64(payload.Stocks))

	case domain.PurchaseCompletedPayload:
		PurchasesTotal.Inc()
		if subtotal, err := decimal.NewFromString(payload.Subtotal); err == nil {
			MoneyInvested.Add(subtotal.InexactFloat64())
		}

	case domain.AccountCreatedPayload:
		AccountsCreated.Inc()

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
