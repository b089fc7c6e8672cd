package selection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Cryptos: []domain.Asset{
			{Symbol: "ETH", Name: "Ethereum", Kind: domain.KindCrypto, UnitPrice: dec("2000")},
			{Symbol: "BTC", Name: "Bitcoin", Kind: domain.KindCrypto, UnitPrice: dec("50000")},
		},
		Stocks: []domain.Asset{
			{Symbol: "F", Name: "Ford", Kind: domain.KindStock, UnitPrice: dec("25")},
			{Symbol: "AAPL", Name: "Apple", Kind: domain.KindStock, UnitPrice: dec("150")},
		},
	}
}

func TestSession_SetInvestValueClampsToBalance(t *testing.T) {
	s := NewSession(dec("1000"), testCatalog())

	assert.True(t, dec("1000").Equal(s.SetInvestValue(dec("5000"))))
	assert.True(t, dec("250").Equal(s.SetInvestValue(dec("250"))))
	assert.True(t, s.SetInvestValue(dec("-1")).IsZero())

	s.SetInvestValue(dec("800"))
	s.UpdateBalance(dec("500"))
	assert.True(t, dec("500").Equal(s.InvestValue()))
}

func TestSession_SetQuantity(t *testing.T) {
	s := NewSession(dec("1000"), testCatalog())
	s.SetInvestValue(dec("100"))

	got, err := s.SetQuantity("f", dec("10"))
	require.NoError(t, err)
	assert.True(t, dec("4").Equal(got), "clamped to max, got %s", got)
	assert.True(t, dec("100").Equal(s.Subtotal()))

	// Reducing the selection frees headroom again
	got, err = s.SetQuantity("F", dec("2"))
	require.NoError(t, err)
	assert.True(t, dec("2").Equal(got))
	assert.True(t, dec("50").Equal(s.Subtotal()))

	// Zero removes the entry
	_, err = s.SetQuantity("F", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, s.Empty())
}

func TestSession_SetQuantityTruncatesCryptoPrecision(t *testing.T) {
	s := NewSession(dec("100000"), testCatalog())
	s.SetInvestValue(dec("100000"))

	got, err := s.SetQuantity("BTC", dec("1.123456789"))
	require.NoError(t, err)
	assert.True(t, dec("1.12345678").Equal(got), got.String())

	stored := s.Request().Crypto["BTC"]
	assert.True(t, stored.Equal(stored.Truncate(8)), "stored quantity fits the purchase precision")
	assert.True(t, dec("56172.839").Equal(s.Subtotal()))
}

func TestSession_SetQuantityErrors(t *testing.T) {
	s := NewSession(dec("1000"), testCatalog())
	s.SetInvestValue(dec("100"))

	_, err := s.SetQuantity("DOGE", dec("1"))
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)

	// 100 buys 0.002 BTC which is below the 0.01 lot
	_, err = s.SetQuantity("BTC", dec("0.002"))
	assert.ErrorIs(t, err, domain.ErrNotPurchasable)
}

func TestSession_Rows(t *testing.T) {
	s := NewSession(dec("1000"), testCatalog())
	s.SetInvestValue(dec("100"))
	_, err := s.SetQuantity("F", dec("3"))
	require.NoError(t, err)

	rows := s.Rows(domain.KindStock)
	require.Len(t, rows, 2)

	assert.Equal(t, "F", rows[0].Asset.Symbol)
	assert.True(t, dec("3").Equal(rows[0].Selected))
	assert.True(t, rows[0].Purchasable)
	assert.True(t, dec("4").Equal(rows[0].MaxQuantity))

	assert.Equal(t, "AAPL", rows[1].Asset.Symbol)
	assert.False(t, rows[1].Purchasable)
	assert.True(t, rows[1].MaxQuantity.IsZero())
}

func TestSession_ApplyAndReset(t *testing.T) {
	s := NewSession(dec("1000"), testCatalog())

	err := s.Apply(domain.PurchaseRequest{
		InvestValue: dec("3000"),
		Crypto:      map[string]decimal.Decimal{"ETH": dec("1.5")},
		Stocks:      map[string]decimal.Decimal{"AAPL": dec("2")},
	})
	require.NoError(t, err)

	// Invest value clamped to the balance, ETH takes 1000 entirely so AAPL
	// has nothing left and is dropped.
	assert.True(t, dec("1000").Equal(s.InvestValue()))
	assert.True(t, dec("0.5").Equal(s.Quantity("ETH")))

	req := s.Request()
	assert.Len(t, req.Crypto, 1)

	s.Reset()
	assert.True(t, s.Empty())
	assert.True(t, s.InvestValue().IsZero())
}
