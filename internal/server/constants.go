package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized       = "Unauthorized"
	ErrMsgTooManyRequests    = "Too Many Requests"
	ErrMsgPurchasesThrottled = "Too many rejected purchases, try again later"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth         = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate           = "SECURITY ALERT: Blocking high request rate"
	SecurityAlertPurchaseRejections = "SECURITY ALERT: Throttling client after repeated purchase rejections"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting    = "Server starting"
	LogMsgRequestStarted    = "Request started"
	LogMsgRequestCompleted  = "Request completed"
	LogMsgRequestHeaders    = "Request headers"
	LogMsgAuthFailed        = "Authentication failed"
	LogMsgPurchaseThrottled = "Purchase refused, client is throttled"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Rate limiting and request limits
const (
	RateLimitWindow               = 5 * time.Minute
	MaxRequestsPerWindow          = 1000
	MaxRejectedPurchasesPerWindow = 20
	FailedAuthAlertThreshold      = 5
	MaxRequestBodyBytes           = 1 << 20
	ReadHeaderTimeout             = 5 * time.Second
)

// PurchasesPathSuffix identifies purchase submission routes
const PurchasesPathSuffix = "/purchases"

// PublicPaths bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"
