package quote

import "time"

// Provider names accepted by NewFromConfig
const (
	ProviderTicker       = "ticker"
	ProviderEOD          = "eod"
	ProviderMarketstack  = "marketstack"
	ProviderAlphavantage = "alphavantage"
	ProviderCoinGecko    = "coingecko"
	ProviderCoinGeckoPro = "coingecko-pro"
	ProviderJSONPath     = "jsonpath"
)

// Default endpoints
const (
	DefaultTickerURL        = "https://demo6455206.mockable.io/crypto"
	DefaultEODURL           = "https://demo6455206.mockable.io/stocks"
	DefaultMarketstackURL   = "http://api.marketstack.com/v1"
	DefaultAlphavantageURL  = "https://www.alphavantage.co/query"
	coinGeckoPublicBaseURL  = "https://api.coingecko.com/api/v3"
	coinGeckoProBaseURL     = "https://pro-api.coingecko.com/api/v3"
	coinGeckoDemoKeyHeader  = "x-cg-demo-api-key"
	coinGeckoProKeyHeader   = "x-cg-pro-api-key"
	coinGeckoVsCurrency     = "usd"
	alphavantageGlobalQuote = "GLOBAL_QUOTE"
	alphavantagePriceField  = "05. price"
)

const (
	// DefaultTimeout bounds every quote request
	DefaultTimeout = 10 * time.Second

	// tickerQuoteSuffixLen is the length of the quote currency appended to ticker pairs (BTCUSD)
	tickerQuoteSuffixLen = 3

	errorBodyLimit = 2048
)

// Error message formats
const (
	ErrMsgBuildRequestFmt  = "%s: failed to build request: %w"
	ErrMsgRequestFailedFmt = "%s: request failed: %w"
	ErrMsgBadStatusFmt     = "%s: unexpected status %d: %s"
	ErrMsgDecodeFailedFmt  = "%s: failed to decode response: %w"
	ErrMsgAPIKeyMissingFmt = "%s: api key is not set"
	ErrMsgAPIErrorFmt      = "%s: api error: %s"
	ErrMsgJSONPathFmt      = "%s: jsonpath %q: %w"
	ErrMsgNotConfiguredFmt = "%s provider %q: %w"
)
