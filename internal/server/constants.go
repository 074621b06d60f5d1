package server

import "time"

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting     = "Server starting"
	LogMsgRequestStarted     = "Request started"
	LogMsgRequestCompleted   = "Request completed"
	LogMsgRequestHeaders     = "Request headers"
	LogMsgAuthFailed         = "Authentication failed"
	LogMsgIdentityMissing    = "Request without a valid Telegram identity"
	LogMsgIdentityResolveErr = "Failed to resolve player for identity"
)

// HTTP header names
const (
	HeaderAPIKey             = "X-API-Key"
	HeaderAuthorization      = "Authorization"
	HeaderForwardedFor       = "X-Forwarded-For"
	HeaderRequestID          = "X-Request-ID"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"
	HeaderCacheControl       = "Cache-Control"
)

// Security header values
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"
)

// Rate limit client key prefixes
const (
	ClientKeyPlayerPrefix = "tg:"
	ClientKeyIPPrefix     = "ip:"
)

// Abuse detection thresholds
const (
	DetectorWindow           = 5 * time.Minute
	FailedAuthAlertCount     = 5
	MaxRequestsPerWindow     = 1000
	HighRateLogEveryNth      = 100
	DefaultMaxRequestBytes   = 1 << 20
	DefaultReadHeaderTimeout = 5 * time.Second
)

// PublicPaths bypass API key authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
	"/swagger/",
}

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"
