// Package selection holds the ephemeral state of a purchase being assembled:
// the invest value and the quantity picked for each catalog asset.
package selection

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/affordability"
	"github.com/osse101/InvestSim_Go/internal/domain"
)

// Row is a catalog asset annotated with the current selection state
type Row struct {
	Asset       domain.Asset    `json:"asset"`
	Selected    decimal.Decimal `json:"selected"`
	Purchasable bool            `json:"purchasable"`
	MaxQuantity decimal.Decimal `json:"max_quantity"`
}

// Session is the selection state for a single account. It is not safe for
// concurrent use.
type Session struct {
	balance     decimal.Decimal
	investValue decimal.Decimal
	catalog     domain.Catalog
	prices      map[string]decimal.Decimal
	crypto      map[string]decimal.Decimal
	stocks      map[string]decimal.Decimal
}

// NewSession starts an empty selection against a balance and catalog
func NewSession(balance decimal.Decimal, catalog domain.Catalog) *Session {
	return &Session{
		balance: balance,
		catalog: catalog,
		prices:  catalog.Prices(),
		crypto:  make(map[string]decimal.Decimal),
		stocks:  make(map[string]decimal.Decimal),
	}
}

// Balance returns the balance the session was opened with
func (s *Session) Balance() decimal.Decimal { return s.balance }

// InvestValue returns the current, clamped invest value
func (s *Session) InvestValue() decimal.Decimal { return s.investValue }

// SetInvestValue stores the requested invest value clamped to [0, balance]
// and returns the stored value.
func (s *Session) SetInvestValue(v decimal.Decimal) decimal.Decimal {
	s.investValue = affordability.ClampInvestValue(v, s.balance)
	return s.investValue
}

// UpdateBalance replaces the balance, re-clamping the invest value
func (s *Session) UpdateBalance(balance decimal.Decimal) {
	s.balance = balance
	s.investValue = affordability.ClampInvestValue(s.investValue, balance)
}

// Subtotal is the cost of everything currently selected
func (s *Session) Subtotal() decimal.Decimal {
	return affordability.Subtotal(s.crypto, s.prices).Add(affordability.Subtotal(s.stocks, s.prices))
}

// Quantity returns the selected quantity for a symbol
func (s *Session) Quantity(symbol string) decimal.Decimal {
	symbol = domain.NormalizeSymbol(symbol)
	if q, ok := s.crypto[symbol]; ok {
		return q
	}
	return s.stocks[symbol]
}

// Affordability evaluates one asset against the current selection
func (s *Session) Affordability(asset domain.Asset) affordability.Result {
	return affordability.ComputeFor(asset, s.investValue, s.Subtotal(), s.Quantity(asset.Symbol))
}

// SetQuantity selects a quantity for a symbol, clamped to the maximum the
// remaining headroom allows. A zero result removes the symbol from the
// selection. The stored quantity is returned.
func (s *Session) SetQuantity(symbol string, requested decimal.Decimal) (decimal.Decimal, error) {
	asset, ok := s.catalog.Find(symbol)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, symbol)
	}

	res := s.Affordability(asset)
	if requested.IsPositive() && !res.Purchasable && s.Quantity(asset.Symbol).IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrNotPurchasable, asset.Symbol)
	}

	qty := affordability.Clamp(requested, res.MaxQuantity, asset.Kind)
	target := s.crypto
	if asset.Kind == domain.KindStock {
		target = s.stocks
	}
	if qty.IsZero() {
		delete(target, asset.Symbol)
	} else {
		target[asset.Symbol] = qty
	}
	return qty, nil
}

// Rows lists every asset of a kind with its selection state, in catalog order
func (s *Session) Rows(kind domain.AssetKind) []Row {
	assets := s.catalog.Assets(kind)
	rows := make([]Row, 0, len(assets))
	subtotal := s.Subtotal()
	for _, a := range assets {
		current := s.Quantity(a.Symbol)
		res := affordability.ComputeFor(a, s.investValue, subtotal, current)
		rows = append(rows, Row{
			Asset:       a,
			Selected:    current,
			Purchasable: res.Purchasable,
			MaxQuantity: res.MaxQuantity,
		})
	}
	return rows
}

// Empty reports whether nothing is selected
func (s *Session) Empty() bool {
	return len(s.crypto) == 0 && len(s.stocks) == 0
}

// Request builds the purchase request for the current selection
func (s *Session) Request() domain.PurchaseRequest {
	return domain.PurchaseRequest{
		InvestValue: s.investValue,
		Crypto:      copyMap(s.crypto),
		Stocks:      copyMap(s.stocks),
	}
}

// Apply loads a whole request into the session: the invest value first,
// then crypto and stock quantities in symbol order so clamping is repeatable.
// Lines that are no longer purchasable are dropped; unknown symbols fail.
func (s *Session) Apply(req domain.PurchaseRequest) error {
	s.Reset()
	s.SetInvestValue(req.InvestValue)
	for _, m := range []map[string]decimal.Decimal{req.Crypto, req.Stocks} {
		symbols := make([]string, 0, len(m))
		for sym := range m {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)
		for _, sym := range symbols {
			if _, err := s.SetQuantity(sym, m[sym]); err != nil && !errors.Is(err, domain.ErrNotPurchasable) {
				return err
			}
		}
	}
	return nil
}

// Reset clears the invest value and both selections
func (s *Session) Reset() {
	s.investValue = decimal.Zero
	s.crypto = make(map[string]decimal.Decimal)
	s.stocks = make(map[string]decimal.Decimal)
}

func copyMap(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
