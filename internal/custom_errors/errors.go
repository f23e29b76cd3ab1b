package custom_errors

import "errors"

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrVoteNotFound      = errors.New("vote not found")
	ErrVoteAlreadyExists = errors.New("vote already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrCommentNotFound   = errors.New("comment not found")

	ErrInvalidFeedTab   = errors.New("invalid feed tab")
	ErrInvalidCursor    = errors.New("invalid pagination cursor")
	ErrValidationFailed = errors.New("validation failed")
	ErrPostValidation   = errors.New("post validation failed")

	ErrForbidden       = errors.New("operation not allowed")
	ErrAlreadyReported = errors.New("post already reported by user")

	ErrDatabaseQuery        = errors.New("database query error")
	ErrDatabaseScan         = errors.New("database scan error")
	ErrNoUpdateRows         = errors.New("no fields to update")
	ErrExternalServiceError = errors.New("external service error")

	ErrCacheMiss     = errors.New("cache miss")
	ErrCacheInternal = errors.New("cache internal error")
)
