package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseRequest is the selection submitted for purchase
type PurchaseRequest struct {
	InvestValue decimal.Decimal            `json:"invest_value"`
	Crypto      map[string]decimal.Decimal `json:"crypto"`
	Stocks      map[string]decimal.Decimal `json:"stocks"`
}

// Quantities returns the selection map for the given kind
func (r PurchaseRequest) Quantities(kind AssetKind) map[string]decimal.Decimal {
	if kind == KindStock {
		return r.Stocks
	}
	return r.Crypto
}

// PurchaseLine is one priced line of a purchase
type PurchaseLine struct {
	Symbol    string          `json:"symbol"`
	Kind      AssetKind       `json:"kind"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Cost      decimal.Decimal `json:"cost"`
}

// Purchase is a committed purchase
type Purchase struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	InvestValue decimal.Decimal `json:"invest_value"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Lines       []PurchaseLine  `json:"lines"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PurchaseReceipt is returned after a successful purchase
type PurchaseReceipt struct {
	Purchase Purchase        `json:"purchase"`
	Balance  decimal.Decimal `json:"balance"`
}
