package utils

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes carried in APIError.Code
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeInvalidID     = "INVALID_ID"
	CodeDuplicate     = "DUPLICATE"
	CodeNoToken       = "NO_TOKEN"
	CodeInvalidToken  = "INVALID_TOKEN"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
	CodeUnavailable   = "SERVICE_UNAVAILABLE"
)

// Error Messages
const (
	ErrNoToken          = "no token provided"
	ErrInvalidToken     = "invalid token"
	ErrInvalidID        = "invalid id format"
	ErrInvalidInput     = "invalid input"
	ErrInternalServer   = "internal server error"
	ErrValidationFailed = "validation failed"
)

// Context keys set by the auth guard
const (
	ContextUserEmail = "user_email"
	ContextUserUID   = "user_uid"
	ContextIdentity  = "identity"
	ContextRequestID = "request_id"
)
