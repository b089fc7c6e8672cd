package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeCheckViolation is raised when a balance or quantity would go negative
	PgErrorCodeCheckViolation = "23514"
)

// Listing limits
const (
	DefaultPurchaseListLimit = 50
	MaxPurchaseListLimit     = 500
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Error Messages - Wallet Operations
const (
	ErrMsgFailedToCreateAccount  = "failed to create account"
	ErrMsgFailedToGetAccount     = "failed to get account"
	ErrMsgFailedToGetWallet      = "failed to get wallet entries"
	ErrMsgFailedToUpsertEntry    = "failed to upsert wallet entry"
	ErrMsgFailedToUpdateBalance  = "failed to update balance"
	ErrMsgFailedToInsertPurchase = "failed to insert purchase"
	ErrMsgFailedToInsertLine     = "failed to insert purchase line"
	ErrMsgFailedToListPurchases  = "failed to list purchases"
	ErrMsgFailedToParseNumeric   = "failed to parse numeric column"
)
