package quote

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// CoinGeckoProvider reads /simple/price. Instruments map ticker symbols to
// CoinGecko coin ids through LookupKey.
type CoinGeckoProvider struct {
	httpSource
	apiKeyHeader string
}

func NewCoinGeckoProvider(baseURL, apiKey string, timeout time.Duration) *CoinGeckoProvider {
	if baseURL == "" {
		baseURL = coinGeckoPublicBaseURL
	}
	header := coinGeckoDemoKeyHeader
	if strings.Contains(baseURL, "pro-api.coingecko.com") {
		header = coinGeckoProKeyHeader
	}
	return &CoinGeckoProvider{
		httpSource:   newHTTPSource(baseURL, apiKey, timeout),
		apiKeyHeader: header,
	}
}

// CoinGeckoDefaultBaseURL returns the base URL for a plan ("public" or "pro")
func CoinGeckoDefaultBaseURL(plan string) string {
	if strings.EqualFold(plan, "pro") {
		return coinGeckoProBaseURL
	}
	return coinGeckoPublicBaseURL
}

func (p *CoinGeckoProvider) Name() string           { return ProviderCoinGecko }
func (p *CoinGeckoProvider) Kind() domain.AssetKind { return domain.KindCrypto }

func (p *CoinGeckoProvider) FetchQuotes(ctx context.Context, instruments []Instrument) ([]domain.Asset, error) {
	ids := symbolsFor(instruments, true)
	if len(ids) == 0 {
		return nil, nil
	}

	endpoint, err := url.Parse(p.baseURL + "/simple/price")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildRequestFmt, p.Name(), err)
	}
	query := endpoint.Query()
	query.Set("ids", strings.Join(ids, ","))
	query.Set("vs_currencies", coinGeckoVsCurrency)
	endpoint.RawQuery = query.Encode()

	headers := map[string]string{}
	if p.apiKey != "" {
		headers[p.apiKeyHeader] = p.apiKey
	}

	var payload map[string]map[string]decimal.Decimal
	if err := p.getJSON(ctx, p.Name(), endpoint.String(), headers, &payload); err != nil {
		return nil, err
	}

	assets := make([]domain.Asset, 0, len(instruments))
	for _, inst := range instruments {
		values, ok := payload[strings.ToLower(strings.TrimSpace(inst.Key()))]
		if !ok {
			continue
		}
		price, ok := values[coinGeckoVsCurrency]
		if !ok {
			continue
		}
		symbol := domain.NormalizeSymbol(inst.Symbol)
		name := inst.Name
		if name == "" {
			name = symbol
		}
		assets = append(assets, domain.Asset{
			Symbol:    symbol,
			Name:      name,
			Kind:      domain.KindCrypto,
			UnitPrice: price,
			IconURL:   inst.IconURL,
		})
	}
	return assets, nil
}
