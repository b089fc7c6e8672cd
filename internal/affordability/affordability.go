// Package affordability computes how much of an asset can still be selected
// given an investable amount and the cost of what is already selected.
package affordability

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// maxQuantityPrecision bounds the digits kept when dividing for crypto quantities
const maxQuantityPrecision = 8

// Result is the outcome of an affordability computation
type Result struct {
	Purchasable bool            `json:"purchasable"`
	MaxQuantity decimal.Decimal `json:"max_quantity"`
	Headroom    decimal.Decimal `json:"headroom"`
}

// Headroom is the amount still available for one asset: the investable amount
// minus the running subtotal plus what this asset already contributes to it.
func Headroom(investValue, subtotal, unitPrice, currentQuantity decimal.Decimal) decimal.Decimal {
	return investValue.Sub(subtotal).Add(unitPrice.Mul(currentQuantity))
}

// Compute returns whether the asset is purchasable and the maximum quantity
// selectable for it.
//
// A non-positive unit price is never purchasable and yields a zero maximum.
// The maximum is never negative; stock maxima are floored to whole shares.
func Compute(investValue, subtotal, unitPrice, currentQuantity decimal.Decimal, kind domain.AssetKind) Result {
	headroom := Headroom(investValue, subtotal, unitPrice, currentQuantity)
	if !unitPrice.IsPositive() {
		return Result{MaxQuantity: decimal.Zero, Headroom: headroom}
	}

	purchasable := headroom.GreaterThanOrEqual(unitPrice.Mul(kind.MinimumLot()))

	if headroom.IsNegative() {
		return Result{Purchasable: false, MaxQuantity: decimal.Zero, Headroom: headroom}
	}

	var maxQty decimal.Decimal
	if kind.Fractional() {
		maxQty = headroom.DivRound(unitPrice, maxQuantityPrecision)
		// DivRound may round up past what the headroom actually pays for
		if maxQty.Mul(unitPrice).GreaterThan(headroom) {
			maxQty = headroom.Div(unitPrice).Truncate(maxQuantityPrecision)
		}
	} else {
		maxQty = headroom.Div(unitPrice).Floor()
	}

	return Result{Purchasable: purchasable, MaxQuantity: maxQty, Headroom: headroom}
}

// ComputeFor is Compute for an asset from the catalog
func ComputeFor(asset domain.Asset, investValue, subtotal, currentQuantity decimal.Decimal) Result {
	return Compute(investValue, subtotal, asset.UnitPrice, currentQuantity, asset.Kind)
}

// Subtotal sums quantity times unit price over a selection. Symbols missing
// from prices contribute nothing.
func Subtotal(selection map[string]decimal.Decimal, prices map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for symbol, qty := range selection {
		price, ok := prices[symbol]
		if !ok {
			continue
		}
		total = total.Add(qty.Mul(price))
	}
	return total
}

// Clamp limits a requested quantity to [0, max]. Stock requests are floored
// and fractional requests truncated to the precision purchases accept.
func Clamp(requested, maxQty decimal.Decimal, kind domain.AssetKind) decimal.Decimal {
	if requested.IsNegative() {
		return decimal.Zero
	}
	if kind.Fractional() {
		requested = requested.Truncate(maxQuantityPrecision)
	} else {
		requested = requested.Floor()
	}
	return decimal.Min(requested, maxQty)
}

// ClampInvestValue limits the invest value to [0, balance]
func ClampInvestValue(requested, balance decimal.Decimal) decimal.Decimal {
	if requested.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(requested, balance)
}
