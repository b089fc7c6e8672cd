package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// decimalFlag is a flag.Value holding a decimal
type decimalFlag struct {
	value decimal.Decimal
}

func (f *decimalFlag) String() string { return f.value.String() }

func (f *decimalFlag) Set(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid amount %q", s)
	}
	f.value = d
	return nil
}

// quantityFlag collects repeated SYMBOL=QUANTITY flags. A symbol given twice
// keeps the last quantity.
type quantityFlag map[string]decimal.Decimal

func (f quantityFlag) String() string {
	symbols := make([]string, 0, len(f))
	for sym := range f {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	parts := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		parts = append(parts, sym+"="+f[sym].String())
	}
	return strings.Join(parts, ",")
}

func (f quantityFlag) Set(s string) error {
	sym, qty, ok := strings.Cut(s, "=")
	sym = domain.NormalizeSymbol(sym)
	if !ok || sym == "" {
		return fmt.Errorf("expected SYMBOL=QUANTITY, got %q", s)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(qty))
	if err != nil || d.IsNegative() {
		return fmt.Errorf("invalid quantity for %s: %q", sym, qty)
	}
	f[sym] = d
	return nil
}
