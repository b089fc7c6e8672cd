package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Quote and cache metric names
const (
	MetricNameQuoteFetchDuration = "quote_fetch_duration_seconds"
	MetricNameQuoteFetchErrors   = "quote_fetch_errors_total"
	MetricNameCatalogAssets      = "catalog_assets"
	MetricNameCatalogRefreshes   = "catalog_refreshes_total"
	MetricNameCacheRequests      = "cache_requests_total"
)

// Business metric names
const (
	MetricNamePurchasesTotal   = "purchases_total"
	MetricNamePurchaseLines    = "purchase_lines_total"
	MetricNameMoneyInvested    = "money_invested_total"
	MetricNameAccountsCreated  = "accounts_created_total"
	MetricNamePurchaseRejected = "purchases_rejected_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextQuoteFetchDuration = "Latency of quote provider fetches in seconds"
	HelpTextQuoteFetchErrors   = "Total number of failed quote provider fetches"
	HelpTextCatalogAssets      = "Number of assets in the current catalog"
	HelpTextCatalogRefreshes   = "Total number of catalog refreshes"
	HelpTextCacheRequests      = "Total number of cache lookups by result"

	HelpTextPurchasesTotal   = "Total number of committed purchases"
	HelpTextPurchaseLines    = "Total number of purchased lines by asset"
	HelpTextMoneyInvested    = "Total money spent on purchases"
	HelpTextAccountsCreated  = "Total number of accounts opened"
	HelpTextPurchaseRejected = "Total number of rejected purchases by reason"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelKind     = "kind"
	LabelSymbol   = "symbol"
	LabelProvider = "provider"
	LabelSource   = "source"
	LabelBackend  = "backend"
	LabelResult   = "result"
	LabelReason   = "reason"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// QuoteLatencyBuckets covers upstream quote APIs, which are much slower than local handlers
var QuoteLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
