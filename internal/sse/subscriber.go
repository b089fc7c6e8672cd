package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers handlers for the events clients care about
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.CatalogRefreshed, s.handleCatalogRefreshed)
	s.bus.Subscribe(event.PurchaseCompleted, s.handlePurchaseCompleted)
	s.bus.Subscribe(event.AccountCreated, s.handleAccountCreated)

	slog.Info(LogMsgSubscribed, "types", []string{
		string(event.CatalogRefreshed),
		string(event.PurchaseCompleted),
		string(event.AccountCreated),
	})
}

func (s *Subscriber) handleCatalogRefreshed(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(domain.CatalogRefreshedPayload)
	if !ok {
		slog.Warn("Invalid catalog refreshed event payload type")
		return nil
	}
	source, _ := evt.GetMetadataValue(domain.MetadataKeySource).(string)

	s.hub.Broadcast(EventTypeCatalogRefreshed, CatalogPayload{
		Cryptos: payload.Cryptos,
		Stocks:  payload.Stocks,
		Source:  source,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeCatalogRefreshed)
	return nil
}

func (s *Subscriber) handlePurchaseCompleted(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(domain.PurchaseCompletedPayload)
	if !ok {
		slog.Warn("Invalid purchase completed event payload type")
		return nil
	}

	s.hub.Broadcast(EventTypePurchaseCompleted, PurchasePayload{
		AccountID:  payload.AccountID,
		PurchaseID: payload.PurchaseID,
		Subtotal:   payload.Subtotal,
		Balance:    payload.Balance,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypePurchaseCompleted, "account_id", payload.AccountID)
	return nil
}

func (s *Subscriber) handleAccountCreated(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(domain.AccountCreatedPayload)
	if !ok {
		slog.Warn("Invalid account created event payload type")
		return nil
	}

	s.hub.Broadcast(EventTypeAccountCreated, AccountPayload{AccountID: payload.AccountID, Name: payload.Name})
	return nil
}
