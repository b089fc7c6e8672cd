package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/InvestSim_Go/internal/event"
	"github.com/osse101/InvestSim_Go/internal/eventlog"
	"github.com/osse101/InvestSim_Go/internal/metrics"
	"github.com/osse101/InvestSim_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	Hub             *sse.Hub
	EventLogService eventlog.Service
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the metrics collector, the SSE bridge and the persistent event log.
// A nil Hub or EventLogService skips that subscriber.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if deps.EventLogService != nil {
		if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
		}
		slog.Info(LogMsgEventLoggerInitialized)
	}

	return nil
}
