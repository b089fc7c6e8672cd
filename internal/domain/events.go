package domain

// Event type constants used for event bus subscriptions, SSE streams and metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "purchase.completed")
const (
	// EventTypeCatalogRefreshed is published after the cached catalog was dropped and reloaded
	EventTypeCatalogRefreshed = "catalog.refreshed"

	// EventTypePurchaseCompleted is published after a purchase was committed
	EventTypePurchaseCompleted = "purchase.completed"

	// EventTypeAccountCreated is published when a new account is opened
	EventTypeAccountCreated = "account.created"
)

// CatalogRefreshedPayload describes a reloaded catalog
type CatalogRefreshedPayload struct {
	Cryptos   int   `json:"cryptos"`
	Stocks    int   `json:"stocks"`
	Timestamp int64 `json:"timestamp"`
}

// PurchaseCompletedPayload describes a committed purchase
type PurchaseCompletedPayload struct {
	AccountID  string `json:"account_id"`
	PurchaseID string `json:"purchase_id"`
	Subtotal   string `json:"subtotal"`
	Balance    string `json:"balance"`
	Lines      int    `json:"lines"`
	Timestamp  int64  `json:"timestamp"`
}

// AccountCreatedPayload describes a newly opened account
type AccountCreatedPayload struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Balance   string `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}
