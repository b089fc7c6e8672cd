package catalog

// CacheKey is the key the assembled catalog is cached under
const CacheKey = "catalog"

// DefinitionVersion is the only catalog definition version understood
const DefinitionVersion = "1"

// Refresh sources recorded on the catalog.refreshed event
const (
	SourceAdmin     = "admin"
	SourceScheduler = "scheduler"
	SourceStartup   = "startup"
)

// Log messages
const (
	LogMsgCacheReadFailed   = "Catalog cache read failed, fetching from providers"
	LogMsgCacheWriteFailed  = "Failed to cache catalog"
	LogMsgCacheDecodeFailed = "Discarding undecodable cached catalog"
	LogMsgFetched           = "Catalog fetched from providers"
	LogMsgFetchFailed       = "Catalog fetch failed"
	LogMsgServingStale      = "Serving last known catalog after fetch failure"
	LogMsgDuplicateSymbol   = "Dropping asset whose symbol is already in the catalog"
	LogMsgRefreshed         = "Catalog refreshed"
	LogMsgRefreshFailed     = "Catalog refresh failed, keeping the cached catalog"
	LogMsgPublishFailed     = "Failed to publish catalog refreshed event"
)
