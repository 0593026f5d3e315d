package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID        contextKey = "user_id"
	ContextKeyUserEmail     contextKey = "user_email"
	ContextKeyUserRole      contextKey = "user_role"
	ContextKeyAccountStatus contextKey = "account_status"
	ContextKeyTokenID       contextKey = "token_id"
	ContextKeyIdentity      contextKey = "identity"
)

const (
	RoleAdmin = "admin"
	RoleHost  = "host"
	RoleUser  = "user"
)

// Role home targets used by the navigation guard after a role mismatch
// or a signed-in visit to an auth route.
const (
	RouteHome           = "/"
	RouteLogin          = "/auth/login"
	RouteAdminDashboard = "/admin/dashboard"
	RouteHostDashboard  = "/host/dashboard"
	RouteUserDashboard  = "/user/dashboard"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	MinutesToSeconds = 60
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
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	ResponseHeaderLocation          = "Location"
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
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

// Listing lifecycle statuses shared by properties and tours. A listing only
// accepts new bookings while available or upcoming.
const (
	ResourceStatusAvailable = "available"
	ResourceStatusBooked    = "booked"
	ResourceStatusCancelled = "cancelled"
	ResourceStatusInactive  = "inactive"
	ResourceStatusUpcoming  = "upcoming"
)

const (
	ResourceKindProperty = "property"
	ResourceKindTour     = "tour"
)

const (
	CacheKeySession  = "session"
	CacheKeyUser     = "user"
	CacheKeyProperty = "property"
	CacheKeyTour     = "tour"
	CacheKeyBooking  = "booking"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingPaymentMoved  = "booking.payment_status_changed"
	EventBookingCancelled     = "booking.cancelled"
)

const (
	Asterix = "*"
	Empty   = ""
)
