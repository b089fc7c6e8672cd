package wallet

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

type requestedLine struct {
	symbol   string
	kind     domain.AssetKind
	quantity decimal.Decimal
}

// validatePurchaseRequest checks the request shape and returns the positive
// lines in a stable order. Zero quantities are dropped.
func validatePurchaseRequest(req domain.PurchaseRequest) ([]requestedLine, error) {
	if !req.InvestValue.IsPositive() {
		return nil, domain.ErrInvalidInvestValue
	}

	var lines []requestedLine
	for _, kind := range []domain.AssetKind{domain.KindCrypto, domain.KindStock} {
		quantities := req.Quantities(kind)
		symbols := make([]string, 0, len(quantities))
		for symbol := range quantities {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)

		seen := make(map[string]bool, len(symbols))
		for _, raw := range symbols {
			qty := quantities[raw]
			symbol := domain.NormalizeSymbol(raw)
			if symbol == "" {
				return nil, fmt.Errorf("%w: empty symbol", domain.ErrInvalidInput)
			}
			if seen[symbol] {
				return nil, fmt.Errorf("%w: duplicate symbol %s", domain.ErrInvalidInput, symbol)
			}
			seen[symbol] = true

			if qty.IsNegative() {
				return nil, fmt.Errorf("%w: %s is negative", domain.ErrInvalidQuantity, symbol)
			}
			if qty.IsZero() {
				continue
			}
			if !kind.Fractional() && !qty.Equal(qty.Truncate(0)) {
				return nil, fmt.Errorf("%w: %s %s", domain.ErrFractionalStock, symbol, qty)
			}
			if !qty.Equal(qty.Truncate(MaxQuantityDecimals)) {
				return nil, fmt.Errorf("%w: %s has more than %d decimals", domain.ErrInvalidQuantity, symbol, MaxQuantityDecimals)
			}
			lines = append(lines, requestedLine{symbol: symbol, kind: kind, quantity: qty})
		}
	}

	if len(lines) == 0 {
		return nil, domain.ErrEmptyPurchase
	}
	return lines, nil
}

// priceLines resolves every line against the catalog. Line costs are rounded
// to the stored money precision and the subtotal is their sum.
func priceLines(catalog *domain.Catalog, lines []requestedLine) ([]domain.PurchaseLine, decimal.Decimal, error) {
	priced := make([]domain.PurchaseLine, 0, len(lines))
	subtotal := decimal.Zero
	for _, l := range lines {
		asset, ok := catalog.Find(l.symbol)
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, l.symbol)
		}
		if asset.Kind != l.kind {
			return nil, decimal.Zero, fmt.Errorf("%w: %s is a %s, not a %s", domain.ErrInvalidInput, l.symbol, asset.Kind, l.kind)
		}
		if !asset.UnitPrice.IsPositive() {
			return nil, decimal.Zero, fmt.Errorf("%w: %s", domain.ErrNotPurchasable, l.symbol)
		}
		cost := asset.UnitPrice.Mul(l.quantity).Round(domain.MoneyPrecision)
		subtotal = subtotal.Add(cost)
		priced = append(priced, domain.PurchaseLine{
			Symbol:    asset.Symbol,
			Kind:      asset.Kind,
			Quantity:  l.quantity,
			UnitPrice: asset.UnitPrice,
			Cost:      cost,
		})
	}
	return priced, subtotal, nil
}
