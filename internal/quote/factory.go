package quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// SourceConfig selects and configures the provider for one asset kind
type SourceConfig struct {
	Provider string
	BaseURL  string
	APIKey   string
	JSONPath JSONPathConfig
}

// Config configures both quote sources
type Config struct {
	Crypto  SourceConfig
	Stock   SourceConfig
	Timeout time.Duration
}

// Set is the pair of providers the catalog is loaded from
type Set struct {
	Crypto Provider
	Stock  Provider
}

// NewFromConfig builds the provider set. Unknown or empty provider names
// yield a MissingProvider that fails every fetch.
func NewFromConfig(cfg Config) Set {
	return Set{
		Crypto: buildCrypto(cfg.Crypto, cfg.Timeout),
		Stock:  buildStock(cfg.Stock, cfg.Timeout),
	}
}

func buildCrypto(src SourceConfig, timeout time.Duration) Provider {
	name := strings.TrimSpace(strings.ToLower(src.Provider))
	switch name {
	case ProviderTicker:
		return NewTickerProvider(src.BaseURL, timeout)
	case ProviderCoinGecko:
		baseURL := src.BaseURL
		if baseURL == "" {
			baseURL = CoinGeckoDefaultBaseURL("public")
		}
		return NewCoinGeckoProvider(baseURL, src.APIKey, timeout)
	case ProviderCoinGeckoPro:
		baseURL := src.BaseURL
		if baseURL == "" {
			baseURL = CoinGeckoDefaultBaseURL("pro")
		}
		return NewCoinGeckoProvider(baseURL, src.APIKey, timeout)
	case ProviderJSONPath:
		return NewJSONPathProvider(domain.KindCrypto, src.BaseURL, src.APIKey, src.JSONPath, timeout)
	default:
		return NewMissingProvider(domain.KindCrypto, name)
	}
}

func buildStock(src SourceConfig, timeout time.Duration) Provider {
	name := strings.TrimSpace(strings.ToLower(src.Provider))
	switch name {
	case ProviderEOD:
		return NewEODProvider(src.BaseURL, timeout)
	case ProviderMarketstack:
		return NewMarketstackProvider(src.BaseURL, src.APIKey, timeout)
	case ProviderAlphavantage:
		return NewAlphavantageProvider(src.BaseURL, src.APIKey, timeout)
	case ProviderJSONPath:
		return NewJSONPathProvider(domain.KindStock, src.BaseURL, src.APIKey, src.JSONPath, timeout)
	default:
		return NewMissingProvider(domain.KindStock, name)
	}
}

// MissingProvider stands in for an unconfigured source
type MissingProvider struct {
	kind domain.AssetKind
	name string
}

func NewMissingProvider(kind domain.AssetKind, name string) MissingProvider {
	return MissingProvider{kind: kind, name: name}
}

func (p MissingProvider) Name() string           { return "missing" }
func (p MissingProvider) Kind() domain.AssetKind { return p.kind }

func (p MissingProvider) FetchQuotes(ctx context.Context, instruments []Instrument) ([]domain.Asset, error) {
	return nil, fmt.Errorf(ErrMsgNotConfiguredFmt, p.kind, p.name, domain.ErrProviderNotConfigured)
}
