package affordability

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// benchCatalog builds n assets per kind with distinct prices
func benchCatalog(n int) ([]domain.Asset, map[string]decimal.Decimal, map[string]decimal.Decimal) {
	assets := make([]domain.Asset, 0, 2*n)
	selection := make(map[string]decimal.Decimal, 2*n)
	prices := make(map[string]decimal.Decimal, 2*n)
	for i := 0; i < n; i++ {
		for _, kind := range []domain.AssetKind{domain.KindCrypto, domain.KindStock} {
			a := domain.Asset{
				Symbol:    fmt.Sprintf("%s%d", kind, i),
				Kind:      kind,
				UnitPrice: decimal.NewFromFloat(1.25 * float64(i+1)),
			}
			assets = append(assets, a)
			prices[a.Symbol] = a.UnitPrice
			selection[a.Symbol] = decimal.NewFromInt(int64(i % 3))
		}
	}
	return assets, selection, prices
}

// BenchmarkRecomputeRows measures one full table refresh: the subtotal plus
// an affordability result for every row.
func BenchmarkRecomputeRows(b *testing.B) {
	for _, n := range []int{10, 100} {
		b.Run(fmt.Sprintf("assets=%d", 2*n), func(b *testing.B) {
			assets, selection, prices := benchCatalog(n)
			invest := decimal.RequireFromString("724568.78")

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				subtotal := Subtotal(selection, prices)
				for _, a := range assets {
					_ = ComputeFor(a, invest, subtotal, selection[a.Symbol])
				}
			}
		})
	}
}

func BenchmarkComputeCrypto(b *testing.B) {
	invest := decimal.RequireFromString("724568.78")
	subtotal := decimal.RequireFromString("12345.67")
	price := decimal.RequireFromString("65432.10987654")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Compute(invest, subtotal, price, decimal.Zero, domain.KindCrypto)
	}
}
