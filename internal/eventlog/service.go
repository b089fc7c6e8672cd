// Package eventlog keeps an audit trail of domain events in the database.
package eventlog

import (
	"context"
	"encoding/json"

	"github.com/osse101/InvestSim_Go/internal/event"
	"github.com/osse101/InvestSim_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger for every domain event type
	Subscribe(bus event.Bus) error

	// ListEvents queries the log
	ListEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LoggedTypes are the event types written to the log
var LoggedTypes = []event.Type{
	event.CatalogRefreshed,
	event.PurchaseCompleted,
	event.AccountCreated,
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range LoggedTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	logger.FromContext(context.Background()).Info(LogMsgSubscribed, "types", LoggedTypes)
	return nil
}

// handleEvent flattens the payload to a JSON object and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := toObject(evt.Payload)
	if !ok {
		log.Debug(LogMsgPayloadNotObject, "type", evt.Type)
		return nil
	}

	var accountID *string
	if id, ok := payload[PayloadKeyAccountID].(string); ok && id != "" {
		accountID = &id
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), accountID, payload, evt.Metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "account_id", accountID)
	return nil
}

func (s *service) ListEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.Limit <= 0 || filter.Limit > DefaultListLimit {
		filter.Limit = DefaultListLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

// toObject converts a typed payload to a generic JSON object
func toObject(payload interface{}) (map[string]interface{}, bool) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, true
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, false
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}
