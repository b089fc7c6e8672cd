package quote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// TickerProvider reads a crypto ticker map keyed by trading pair:
//
//	{"BTCUSD": {"last": 50000.12}, "ETHUSD": {"last": 3000}}
//
// The symbol is the pair without its trailing quote currency.
type TickerProvider struct {
	httpSource
}

type tickerEntry struct {
	Last    decimal.Decimal `json:"last"`
	Name    string          `json:"name"`
	IconURL string          `json:"icon_url"`
}

func NewTickerProvider(baseURL string, timeout time.Duration) *TickerProvider {
	if baseURL == "" {
		baseURL = DefaultTickerURL
	}
	return &TickerProvider{httpSource: newHTTPSource(baseURL, "", timeout)}
}

func (p *TickerProvider) Name() string           { return ProviderTicker }
func (p *TickerProvider) Kind() domain.AssetKind { return domain.KindCrypto }

func (p *TickerProvider) FetchQuotes(ctx context.Context, instruments []Instrument) ([]domain.Asset, error) {
	var payload map[string]tickerEntry
	if err := p.getJSON(ctx, p.Name(), p.baseURL, nil, &payload); err != nil {
		return nil, err
	}

	assets := make([]domain.Asset, 0, len(payload))
	for pair, entry := range payload {
		symbol := tickerSymbol(pair)
		if symbol == "" {
			continue
		}
		name := entry.Name
		if name == "" {
			name = symbol
		}
		assets = append(assets, domain.Asset{
			Symbol:    symbol,
			Name:      name,
			Kind:      domain.KindCrypto,
			UnitPrice: entry.Last,
			IconURL:   entry.IconURL,
		})
	}
	return applyInstruments(assets, instruments), nil
}

func tickerSymbol(pair string) string {
	pair = domain.NormalizeSymbol(pair)
	if len(pair) <= tickerQuoteSuffixLen {
		return ""
	}
	return pair[:len(pair)-tickerQuoteSuffixLen]
}
