package constant

import (
	"math"
	"time"
)

const (
	ActorAnonymous = "anonymous"
)

const (
	RequestParamPage      = "page"
	RequestParamPageSize  = "pageSize"
	RequestParamSortBy    = "sortBy"
	RequestParamDirection = "direction"
	RequestParamRoomName  = "roomName"
	RequestParamDate      = "date"
)

const (
	RequestParamID   = "id"
	RequestParamName = "name"
)

const (
	DefaultValuePage    = 0
	DefaultValuePageSz  = 10
	MaxValuePageSize    = 100
	MaxValuePage        = math.MaxInt32 / MaxValuePageSize
	DefaultValueSortDir = "ASC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation      = "23505"
	PqErrorCodeFkViolation          = "23503"
	PqErrorCodeExclusionViolation   = "23P01"
	PqErrorCodeSerializationFailure = "40001"
)

const (
	DateFormat      = time.RFC3339
	DayFormat       = "2006-01-02"
	TimeOfDayFormat = "15:04"
	TimeOfDayFull   = "15:04:05"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
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
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseHealthy                   = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
