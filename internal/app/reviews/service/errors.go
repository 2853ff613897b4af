package service

import "errors"

// Business errors mapped to HTTP statuses by the handlers. Every request
// terminates on the first of these it hits; nothing is retried in-process.
var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrReviewNotFound   = errors.New("review not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
