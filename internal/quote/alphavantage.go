package quote

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// AlphavantageProvider reads GLOBAL_QUOTE prices, one request per symbol
type AlphavantageProvider struct {
	httpSource
}

type alphavantageResponse struct {
	GlobalQuote  map[string]string `json:"Global Quote"`
	ErrorMessage string            `json:"Error Message"`
	Note         string            `json:"Note"`
}

func NewAlphavantageProvider(baseURL, apiKey string, timeout time.Duration) *AlphavantageProvider {
	if baseURL == "" {
		baseURL = DefaultAlphavantageURL
	}
	return &AlphavantageProvider{httpSource: newHTTPSource(baseURL, apiKey, timeout)}
}

func (p *AlphavantageProvider) Name() string           { return ProviderAlphavantage }
func (p *AlphavantageProvider) Kind() domain.AssetKind { return domain.KindStock }

func (p *AlphavantageProvider) FetchQuotes(ctx context.Context, instruments []Instrument) ([]domain.Asset, error) {
	symbols := symbolsFor(instruments, false)
	if len(symbols) == 0 {
		return nil, nil
	}
	if p.apiKey == "" {
		return nil, fmt.Errorf(ErrMsgAPIKeyMissingFmt, p.Name())
	}

	assets := make([]domain.Asset, 0, len(symbols))
	for _, symbol := range symbols {
		price, err := p.fetchOne(ctx, symbol)
		if err != nil {
			return nil, err
		}
		assets = append(assets, domain.Asset{
			Symbol:    symbol,
			Name:      symbol,
			Kind:      domain.KindStock,
			UnitPrice: price,
		})
	}
	return applyInstruments(assets, instruments), nil
}

func (p *AlphavantageProvider) fetchOne(ctx context.Context, symbol string) (decimal.Decimal, error) {
	endpoint, err := url.Parse(p.baseURL)
	if err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgBuildRequestFmt, p.Name(), err)
	}
	query := endpoint.Query()
	query.Set("function", alphavantageGlobalQuote)
	query.Set("symbol", symbol)
	query.Set("apikey", p.apiKey)
	endpoint.RawQuery = query.Encode()

	var payload alphavantageResponse
	if err := p.getJSON(ctx, p.Name(), endpoint.String(), nil, &payload); err != nil {
		return decimal.Zero, err
	}
	if payload.ErrorMessage != "" {
		return decimal.Zero, fmt.Errorf(ErrMsgAPIErrorFmt, p.Name(), payload.ErrorMessage)
	}
	if payload.Note != "" && len(payload.GlobalQuote) == 0 {
		return decimal.Zero, fmt.Errorf(ErrMsgAPIErrorFmt, p.Name(), payload.Note)
	}

	raw, ok := payload.GlobalQuote[alphavantagePriceField]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: no price for %s: %w", p.Name(), symbol, domain.ErrAssetNotFound)
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgDecodeFailedFmt, p.Name(), err)
	}
	return price, nil
}
