package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidAccountID      = "Invalid account ID"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidSince          = "Invalid since parameter, expected RFC3339"
	ErrMsgEventLogDisabled      = "Event log is disabled"
	ErrMsgInvalidKind           = "Invalid kind parameter. Valid options: crypto, stock"
	ErrMsgPriceOrSymbol         = "Either symbol or unit_price and kind are required"
	ErrMsgBalanceOrAccount      = "Either account_id or balance is required"
)

// Success messages for API responses
const (
	MsgCatalogReloaded = "Catalog reloaded"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgAccountNotFoundError  = "Account not found"
	ErrMsgAssetNotFoundError    = "Asset not found"
	ErrMsgCatalogLoadingError   = "Quotes are still loading. Please try again shortly."
	ErrMsgNotEnoughMoneyError   = "Not enough money"
	ErrMsgExceedsInvestError    = "Selection costs more than the invest value"
	ErrMsgNotPurchasableError   = "Asset is not purchasable with the remaining invest value"
	ErrMsgExceedsMaxError       = "Quantity exceeds what the invest value allows"
	ErrMsgEmptyPurchaseError    = "Nothing selected for purchase"
	ErrMsgFractionalStockError  = "Stock quantities must be whole numbers"
	ErrMsgInvalidQuantityError  = "Invalid quantity"
	ErrMsgInvalidInvestError    = "Invest value must be positive"
	ErrMsgInvalidAssetKindError = "Invalid asset kind"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)
