package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata carries optional key/value context alongside a payload
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	CatalogRefreshed  Type = domain.EventTypeCatalogRefreshed
	PurchaseCompleted Type = domain.EventTypePurchaseCompleted
	AccountCreated    Type = domain.EventTypeAccountCreated
)

// NewCatalogRefreshedEvent creates a catalog refreshed event
func NewCatalogRefreshedEvent(catalog domain.Catalog, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogRefreshed,
		Payload: domain.CatalogRefreshedPayload{
			Cryptos:   len(catalog.Cryptos),
			Stocks:    len(catalog.Stocks),
			Timestamp: time.Now().Unix(),
		},
		Metadata: Metadata{domain.MetadataKeySource: source},
	}
}

// NewPurchaseCompletedEvent creates a purchase completed event
func NewPurchaseCompletedEvent(receipt domain.PurchaseReceipt) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PurchaseCompleted,
		Payload: domain.PurchaseCompletedPayload{
			AccountID:  receipt.Purchase.AccountID.String(),
			PurchaseID: receipt.Purchase.ID.String(),
			Subtotal:   receipt.Purchase.Subtotal.String(),
			Balance:    receipt.Balance.String(),
			Lines:      len(receipt.Purchase.Lines),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewAccountCreatedEvent creates an account created event
func NewAccountCreatedEvent(account domain.Account) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AccountCreated,
		Payload: domain.AccountCreatedPayload{
			AccountID: account.ID.String(),
			Name:      account.Name,
			Balance:   account.Balance.String(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type, synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
