package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound = "account not found"

	// Catalog errors
	ErrMsgAssetNotFound         = "asset not found"
	ErrMsgInvalidAssetKind      = "invalid asset kind"
	ErrMsgCatalogUnavailable    = "catalog unavailable"
	ErrMsgProviderNotConfigured = "quote provider not configured"

	// Purchase errors
	ErrMsgInsufficientFunds   = "insufficient funds"
	ErrMsgExceedsInvestValue  = "subtotal exceeds invest value"
	ErrMsgNotPurchasable      = "asset is not purchasable"
	ErrMsgQuantityExceedsMax  = "quantity exceeds maximum purchasable"
	ErrMsgEmptyPurchase       = "nothing selected for purchase"
	ErrMsgFractionalStock     = "stock quantities must be whole numbers"
	ErrMsgInvalidQuantity     = "quantity"
	ErrMsgInvalidInvestValue  = "invest value must be positive"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)

	ErrAssetNotFound         = errors.New(ErrMsgAssetNotFound)
	ErrInvalidAssetKind      = errors.New(ErrMsgInvalidAssetKind)
	ErrCatalogUnavailable    = errors.New(ErrMsgCatalogUnavailable)
	ErrProviderNotConfigured = errors.New(ErrMsgProviderNotConfigured)

	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)
	ErrExceedsInvestValue = errors.New(ErrMsgExceedsInvestValue)
	ErrNotPurchasable     = errors.New(ErrMsgNotPurchasable)
	ErrQuantityExceedsMax = errors.New(ErrMsgQuantityExceedsMax)
	ErrEmptyPurchase      = errors.New(ErrMsgEmptyPurchase)
	ErrFractionalStock    = errors.New(ErrMsgFractionalStock)
	ErrInvalidQuantity    = errors.New("invalid " + ErrMsgInvalidQuantity)
	ErrInvalidInvestValue = errors.New(ErrMsgInvalidInvestValue)

	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
