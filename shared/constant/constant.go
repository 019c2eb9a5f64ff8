package constant

import (
	"time"
)

const (
	RequestParamPage  = "page"
	RequestParamLimit = "limit"
)

const (
	RequestParamID       = "id"
	RequestParamCheckIn  = "checkin"
	RequestParamCheckOut = "checkout"
	RequestParamRoomType = "roomtype"
	RequestParamDate     = "date"
	RequestParamMonths   = "months"
	RequestParamCategory = "category"
	RequestParamIndex    = "index"
	RequestParamStep     = "step"
	RequestMaxMemory     = 10 << 20 // 10 MB
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 24
	MaxValueLimit     = 100
)

const (
	DateFormat    = time.RFC3339
	ISODateFormat = "2006-01-02"
	// DisplayDateFormat renders dates the way the guest sees them, e.g. "15 Mar 2025".
	DisplayDateFormat = "2 Jan 2006"
	MonthFormat       = "January 2006"
)

const (
	HoursPerDay = 24
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "something went wrong on our side, please try again or message us on WhatsApp"
)

// Failure reasons reported to the booking form so it can react to each case separately.
const (
	ReasonMissingField = "missing-field"
	ReasonInvalidDate  = "invalid-date"
	ReasonUnavailable  = "unavailable"
	ReasonUnsaved      = "unsaved"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
