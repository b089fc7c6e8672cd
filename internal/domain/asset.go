package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AssetKind distinguishes fractional crypto holdings from whole-share stocks
type AssetKind string

const (
	KindCrypto AssetKind = "crypto"
	KindStock  AssetKind = "stock"
)

var (
	cryptoMinimumLot = decimal.RequireFromString("0.01")
	stockMinimumLot  = decimal.NewFromInt(1)
)

// Valid reports whether k is one of the known asset kinds
func (k AssetKind) Valid() bool {
	return k == KindCrypto || k == KindStock
}

// MinimumLot is the smallest purchasable increment for the kind
func (k AssetKind) MinimumLot() decimal.Decimal {
	if k == KindStock {
		return stockMinimumLot
	}
	return cryptoMinimumLot
}

// Fractional reports whether quantities of this kind may carry a fractional part
func (k AssetKind) Fractional() bool {
	return k != KindStock
}

// ParseAssetKind accepts the kind name in any case
func ParseAssetKind(s string) (AssetKind, error) {
	switch AssetKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindCrypto:
		return KindCrypto, nil
	case KindStock:
		return KindStock, nil
	}
	return "", ErrInvalidAssetKind
}

// Asset is a single quote in the catalog
type Asset struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Kind      AssetKind       `json:"kind"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	IconURL   string          `json:"icon_url,omitempty"`
}

// Catalog holds the crypto and stock quotes offered for purchase
type Catalog struct {
	Cryptos   []Asset   `json:"cryptos"`
	Stocks    []Asset   `json:"stocks"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Assets returns the list for the given kind
func (c *Catalog) Assets(kind AssetKind) []Asset {
	if kind == KindStock {
		return c.Stocks
	}
	return c.Cryptos
}

// Find looks a symbol up across both lists, case-insensitively
func (c *Catalog) Find(symbol string) (Asset, bool) {
	symbol = NormalizeSymbol(symbol)
	for _, list := range [][]Asset{c.Cryptos, c.Stocks} {
		for _, a := range list {
			if a.Symbol == symbol {
				return a, true
			}
		}
	}
	return Asset{}, false
}

// Prices returns a symbol to unit price map over the whole catalog
func (c *Catalog) Prices() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(c.Cryptos)+len(c.Stocks))
	for _, a := range c.Cryptos {
		out[a.Symbol] = a.UnitPrice
	}
	for _, a := range c.Stocks {
		out[a.Symbol] = a.UnitPrice
	}
	return out
}

// SortByPrice orders assets by ascending unit price, ties broken by symbol
func SortByPrice(assets []Asset) {
	sort.SliceStable(assets, func(i, j int) bool {
		if cmp := assets[i].UnitPrice.Cmp(assets[j].UnitPrice); cmp != 0 {
			return cmp < 0
		}
		return assets[i].Symbol < assets[j].Symbol
	})
}

// NormalizeSymbol uppercases and trims a ticker symbol
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
