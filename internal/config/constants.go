package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog       = "configs/catalog.json"
	ConfigPathCatalogSchema = "configs/catalog.schema.json"
)

// Defaults applied when the environment leaves a setting unset
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultLogDir      = "logs"
	DefaultDBName      = "investsim"

	DefaultDBMaxConns        = 10
	DefaultDBMinConns        = 2
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour

	DefaultInitialBalance = "724568.78"

	DefaultCryptoProvider = "ticker"
	DefaultStockProvider  = "eod"
	DefaultQuoteTimeout   = 10 * time.Second

	DefaultCacheBackend = "memory"
	DefaultCacheSize    = 100
	DefaultCacheTTL     = 5 * time.Minute
	DefaultRedisAddr    = "localhost:6379"

	DefaultCatalogRefreshInterval = 5 * time.Minute
	DefaultWorkerCount            = 2

	DefaultEventLogRetentionDays   = 30
	DefaultEventLogCleanupInterval = 24 * time.Hour
)
