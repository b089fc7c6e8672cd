package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Quote and cache metrics
var (
	QuoteFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameQuoteFetchDuration,
			Help:    HelpTextQuoteFetchDuration,
			Buckets: QuoteLatencyBuckets,
		},
		[]string{LabelProvider, LabelKind},
	)

	QuoteFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuoteFetchErrors,
			Help: HelpTextQuoteFetchErrors,
		},
		[]string{LabelProvider, LabelKind},
	)

	CatalogAssets = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogAssets,
			Help: HelpTextCatalogAssets,
		},
		[]string{LabelKind},
	)

	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogRefreshes,
			Help: HelpTextCatalogRefreshes,
		},
		[]string{LabelSource},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheRequests,
			Help: HelpTextCacheRequests,
		},
		[]string{LabelBackend, LabelResult},
	)
)

// Business Metrics
var (
	PurchasesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesTotal,
			Help: HelpTextPurchasesTotal,
		},
	)

	PurchaseLines = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchaseLines,
			Help: HelpTextPurchaseLines,
		},
		[]string{LabelKind, LabelSymbol},
	)

	MoneyInvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyInvested,
			Help: HelpTextMoneyInvested,
		},
	)

	AccountsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAccountsCreated,
			Help: HelpTextAccountsCreated,
		},
	)

	PurchasesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchaseRejected,
			Help: HelpTextPurchaseRejected,
		},
		[]string{LabelReason},
	)
)
