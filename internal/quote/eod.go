package quote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// EODProvider reads an end-of-day stock list: [{"symbol","name","close"}]
type EODProvider struct {
	httpSource
}

type eodEntry struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Close  decimal.Decimal `json:"close"`
}

func NewEODProvider(baseURL string, timeout time.Duration) *EODProvider {
	if baseURL == "" {
		baseURL = DefaultEODURL
	}
	return &EODProvider{httpSource: newHTTPSource(baseURL, "", timeout)}
}

func (p *EODProvider) Name() string           { return ProviderEOD }
func (p *EODProvider) Kind() domain.AssetKind { return domain.KindStock }

func (p *EODProvider) FetchQuotes(ctx context.Context, instruments []Instrument) ([]domain.Asset, error) {
	var payload []eodEntry
	if err := p.getJSON(ctx, p.Name(), p.baseURL, nil, &payload); err != nil {
		return nil, err
	}
	return applyInstruments(eodAssets(payload), instruments), nil
}

func eodAssets(entries []eodEntry) []domain.Asset {
	assets := make([]domain.Asset, 0, len(entries))
	for _, e := range entries {
		symbol := domain.NormalizeSymbol(e.Symbol)
		if symbol == "" {
			continue
		}
		name := e.Name
		if name == "" {
			name = symbol
		}
		assets = append(assets, domain.Asset{
			Symbol:    symbol,
			Name:      name,
			Kind:      domain.KindStock,
			UnitPrice: e.Close,
		})
	}
	return assets
}
