package wallet

// Limits
const (
	// MaxQuantityDecimals matches the NUMERIC scale of stored quantities
	MaxQuantityDecimals = 8
	MaxAccountNameLen   = 100
	DefaultAccountName  = "investor"
)

// Rejection reasons recorded in metrics
const (
	ReasonValidation        = "validation"
	ReasonUnknownAsset      = "unknown_asset"
	ReasonUnknownAccount    = "unknown_account"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonExceedsInvest     = "exceeds_invest_value"
	ReasonNotPurchasable    = "not_purchasable"
	ReasonCatalog           = "catalog_unavailable"
	ReasonInternal          = "internal"
)

// Log messages
const (
	LogMsgSubmitPurchase    = "SubmitPurchase called"
	LogMsgPurchaseCommitted = "Purchase committed"
	LogMsgPurchaseRejected  = "Purchase rejected"
	LogMsgAccountCreated    = "Account created"
	LogMsgPublishFailed     = "Failed to publish event"
	LogMsgShuttingDown      = "Wallet service shutting down, waiting for background tasks..."
)
