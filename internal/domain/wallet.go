package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account owns a cash balance and a wallet
type Account struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// WalletEntry is the holding of a single symbol.
// UnitValue is the quantity-weighted average purchase price.
type WalletEntry struct {
	Symbol    string          `json:"symbol"`
	Kind      AssetKind       `json:"kind"`
	UnitValue decimal.Decimal `json:"unit_value"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Value is the cost basis of the holding
func (e WalletEntry) Value() decimal.Decimal {
	return e.UnitValue.Mul(e.Quantity)
}

// Accumulate merges a new purchase into the holding, averaging the unit value
func (e WalletEntry) Accumulate(quantity, unitPrice decimal.Decimal) WalletEntry {
	total := e.Quantity.Add(quantity)
	if total.IsZero() {
		return e
	}
	cost := e.Value().Add(quantity.Mul(unitPrice))
	e.UnitValue = cost.DivRound(total, MoneyPrecision)
	e.Quantity = total
	return e
}

// Wallet is the snapshot returned to clients
type Wallet struct {
	AccountID uuid.UUID       `json:"account_id"`
	Entries   []WalletEntry   `json:"entries"`
	Total     decimal.Decimal `json:"total"`
}

// NewWallet builds a wallet and computes its total
func NewWallet(accountID uuid.UUID, entries []WalletEntry) Wallet {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Value())
	}
	if entries == nil {
		entries = []WalletEntry{}
	}
	return Wallet{AccountID: accountID, Entries: entries, Total: total}
}

// MoneyPrecision is the number of decimal places kept for stored amounts
const MoneyPrecision = 8
