// Package format renders money and quantities for people: currency amounts
// through go-money's currency tables, quantities with locale digit grouping.
package format

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// DefaultCurrency is the currency balances and prices are quoted in
const DefaultCurrency = money.USD

var (
	printer = message.NewPrinter(language.English)
	title   = cases.Title(language.English)
)

// Money formats an amount in the given currency, e.g. $724,568.78.
// Amounts are rounded half away from zero to the currency's minor unit.
func Money(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// USD formats an amount in US dollars
func USD(amount decimal.Decimal) string {
	return Money(amount, DefaultCurrency)
}

// Quantity formats a quantity with thousands grouping. Crypto keeps its
// significant fractional digits; stocks are whole shares.
func Quantity(q decimal.Decimal, kind domain.AssetKind) string {
	if !kind.Fractional() {
		q = q.Floor()
	}

	neg := q.IsNegative()
	q = q.Abs()
	whole := q.Truncate(0)
	out := printer.Sprintf("%d", whole.IntPart())

	if frac := q.Sub(whole); !frac.IsZero() {
		// "0.00123" -> ".00123"
		out += strings.TrimPrefix(frac.String(), "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Kind renders an asset kind as a heading, e.g. "Crypto"
func Kind(kind domain.AssetKind) string {
	return title.String(string(kind))
}
