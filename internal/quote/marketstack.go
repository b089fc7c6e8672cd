package quote

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// MarketstackProvider reads latest end-of-day prices from marketstack
type MarketstackProvider struct {
	httpSource
}

type marketstackResponse struct {
	Data  []eodEntry `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewMarketstackProvider(baseURL, apiKey string, timeout time.Duration) *MarketstackProvider {
	if baseURL == "" {
		baseURL = DefaultMarketstackURL
	}
	return &MarketstackProvider{httpSource: newHTTPSource(baseURL, apiKey, timeout)}
}

func (p *MarketstackProvider) Name() string           { return ProviderMarketstack }
func (p *MarketstackProvider) Kind() domain.AssetKind { return domain.KindStock }

// FetchQuotes requires at least one instrument; marketstack has no "everything" listing.
func (p *MarketstackProvider) FetchQuotes(ctx context.Context, instruments []Instrument) ([]domain.Asset, error) {
	symbols := symbolsFor(instruments, false)
	if len(symbols) == 0 {
		return nil, nil
	}
	if p.apiKey == "" {
		return nil, fmt.Errorf(ErrMsgAPIKeyMissingFmt, p.Name())
	}

	endpoint, err := url.Parse(p.baseURL + "/eod/latest")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildRequestFmt, p.Name(), err)
	}
	query := endpoint.Query()
	query.Set("access_key", p.apiKey)
	query.Set("symbols", strings.Join(symbols, ","))
	endpoint.RawQuery = query.Encode()

	var payload marketstackResponse
	if err := p.getJSON(ctx, p.Name(), endpoint.String(), nil, &payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf(ErrMsgAPIErrorFmt, p.Name(), payload.Error.Message)
	}

	return applyInstruments(eodAssets(payload.Data), instruments), nil
}
