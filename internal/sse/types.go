package sse

// PurchasePayload is sent to clients when a purchase completes. Quantities
// are not included; clients refetch the wallet.
type PurchasePayload struct {
	AccountID  string `json:"account_id"`
	PurchaseID string `json:"purchase_id"`
	Subtotal   string `json:"subtotal"`
	Balance    string `json:"balance"`
}

// CatalogPayload tells clients to reload the catalog
type CatalogPayload struct {
	Cryptos int    `json:"cryptos"`
	Stocks  int    `json:"stocks"`
	Source  string `json:"source,omitempty"`
}

// AccountPayload announces a new account
type AccountPayload struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}
