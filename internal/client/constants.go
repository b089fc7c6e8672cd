package client

import "time"

// Request configuration
const (
	DefaultTimeout = 10 * time.Second
	MaxRetries     = 3
	RetryDelay     = 500 * time.Millisecond
	APIKeyHeader   = "X-API-Key"
	apiPrefix      = "/api/v1"
)

// Event stream configuration
const (
	streamInitialBackoff    = 1 * time.Second
	streamMaxBackoff        = 30 * time.Second
	streamBackoffMultiplier = 2.0
	streamBufferSize        = 64 * 1024
)

// Log messages
const (
	LogMsgRetrying          = "Retrying API request"
	LogMsgRequestFailed     = "API request failed"
	LogMsgServerError       = "Server error, will retry"
	LogMsgStreamConnected   = "Event stream connected"
	LogMsgStreamFailed      = "Event stream connection failed"
	LogMsgStreamParseError  = "Failed to parse stream event"
	LogMsgStreamHandlerFail = "Stream event handler error"
)
