package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

func serveJSON(t *testing.T, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func bySymbol(assets []domain.Asset) map[string]domain.Asset {
	out := make(map[string]domain.Asset, len(assets))
	for _, a := range assets {
		out[a.Symbol] = a
	}
	return out
}

func TestTickerProvider_StripsQuoteCurrency(t *testing.T) {
	t.Parallel()

	ts := serveJSON(t, `{"BTCUSD":{"last":50000.12},"ETHUSD":{"last":"3000"},"X":{"last":1}}`, nil)

	p := NewTickerProvider(ts.URL, time.Second)
	assets, err := p.FetchQuotes(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	got := bySymbol(assets)
	assert.True(t, decimal.RequireFromString("50000.12").Equal(got["BTC"].UnitPrice))
	assert.Equal(t, domain.KindCrypto, got["ETH"].Kind)
	assert.Equal(t, "ETH", got["ETH"].Name)
}

func TestTickerProvider_FiltersInstruments(t *testing.T) {
	t.Parallel()

	ts := serveJSON(t, `{"BTCUSD":{"last":50000},"ETHUSD":{"last":3000}}`, nil)

	p := NewTickerProvider(ts.URL, time.Second)
	assets, err := p.FetchQuotes(context.Background(), []Instrument{{Symbol: "btc", Name: "Bitcoin", IconURL: "btc.svg"}})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "Bitcoin", assets[0].Name)
	assert.Equal(t, "btc.svg", assets[0].IconURL)
}

func TestEODProvider(t *testing.T) {
	t.Parallel()

	ts := serveJSON(t, `[{"symbol":"aapl","name":"Apple Inc","close":150.25},{"symbol":"F","close":12}]`, nil)

	p := NewEODProvider(ts.URL, time.Second)
	assets, err := p.FetchQuotes(context.Background(), nil)
	require.NoError(t, err)

	got := bySymbol(assets)
	require.Contains(t, got, "AAPL")
	assert.Equal(t, "Apple Inc", got["AAPL"].Name)
	assert.Equal(t, domain.KindStock, got["F"].Kind)
	assert.True(t, decimal.NewFromInt(12).Equal(got["F"].UnitPrice))
}

func TestProvider_BadStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := NewEODProvider(ts.URL, time.Second).FetchQuotes(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestMarketstackProvider(t *testing.T) {
	t.Parallel()

	ts := serveJSON(t, `{"data":[{"symbol":"AAPL","close":150},{"symbol":"MSFT","close":300}]}`, func(r *http.Request) {
		assert.Equal(t, "/eod/latest", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "AAPL,MSFT", r.URL.Query().Get("symbols"))
	})

	p := NewMarketstackProvider(ts.URL, "key", time.Second)
	assets, err := p.FetchQuotes(context.Background(), []Instrument{{Symbol: "AAPL", Name: "Apple"}, {Symbol: "msft"}, {Symbol: "AAPL"}})
	require.NoError(t, err)
	require.Len(t, assets, 3)
	assert.Equal(t, "Apple", assets[0].Name)
}

func TestMarketstackProvider_APIError(t *testing.T) {
	t.Parallel()

	ts := serveJSON(t, `{"error":{"code":"invalid_access_key","message":"bad key"}}`, nil)

	_, err := NewMarketstackProvider(ts.URL, "key", time.Second).FetchQuotes(context.Background(), []Instrument{{Symbol: "AAPL"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")

	_, err = NewMarketstackProvider(ts.URL, "", time.Second).FetchQuotes(context.Background(), []Instrument{{Symbol: "AAPL"}})
	require.Error(t, err)
}

func TestAlphavantageProvider(t *testing.T) {
	t.Parallel()

	ts := serveJSON(t, `{"Global Quote":{"01. symbol":"IBM","05. price":"182.5300"}}`, func(r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "IBM", r.URL.Query().Get("symbol"))
		assert.Equal(t, "demo", r.URL.Query().Get("apikey"))
	})

	p := NewAlphavantageProvider(ts.URL, "demo", time.Second)
	assets, err := p.FetchQuotes(context.Background(), []Instrument{{Symbol: "ibm", Name: "IBM Corp"}})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.True(t, decimal.RequireFromString("182.53").Equal(assets[0].UnitPrice))
	assert.Equal(t, "IBM Corp", assets[0].Name)
}

func TestCoinGeckoProvider(t *testing.T) {
	t.Parallel()

	ts := serveJSON(t, `{"bitcoin":{"usd":65000.5},"ethereum":{"usd":3100}}`, func(r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "cg-key", r.Header.Get("x-cg-demo-api-key"))
	})

	p := NewCoinGeckoProvider(ts.URL, "cg-key", time.Second)
	assets, err := p.FetchQuotes(context.Background(), []Instrument{
		{Symbol: "BTC", Name: "Bitcoin", LookupKey: "bitcoin"},
		{Symbol: "ETH", LookupKey: "Ethereum"},
	})
	require.NoError(t, err)
	got := bySymbol(assets)
	assert.True(t, decimal.RequireFromString("65000.5").Equal(got["BTC"].UnitPrice))
	assert.Equal(t, "ETH", got["ETH"].Name)
}

func TestJSONPathProvider(t *testing.T) {
	t.Parallel()

	ts := serveJSON(t, `{"data":[{"symbol":"sol","name":"Solana","price":142.123456789},{"symbol":"ada","price":"0.45"}]}`, nil)

	p := NewJSONPathProvider(domain.KindCrypto, ts.URL, "", DefaultJSONPathConfig(), time.Second)
	assets, err := p.FetchQuotes(context.Background(), nil)
	require.NoError(t, err)

	got := bySymbol(assets)
	require.Len(t, got, 2)
	assert.True(t, decimal.RequireFromString("142.123456789").Equal(got["SOL"].UnitPrice))
	assert.Equal(t, "Solana", got["SOL"].Name)
	assert.True(t, decimal.RequireFromString("0.45").Equal(got["ADA"].UnitPrice))
}

func TestJSONPathConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	c := JSONPathConfig{PricePath: "$.quote.last"}.WithDefaults()
	assert.Equal(t, "$.quote.last", c.PricePath)
	assert.Equal(t, DefaultJSONPathConfig().ListPath, c.ListPath)
	assert.Equal(t, DefaultJSONPathConfig().SymbolPath, c.SymbolPath)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	set := NewFromConfig(Config{
		Crypto: SourceConfig{Provider: "CoinGecko"},
		Stock:  SourceConfig{Provider: "marketstack", APIKey: "k"},
	})
	assert.Equal(t, ProviderCoinGecko, set.Crypto.Name())
	assert.Equal(t, ProviderMarketstack, set.Stock.Name())

	missing := NewFromConfig(Config{}).Stock
	_, err := missing.FetchQuotes(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
}
