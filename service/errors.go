package service

import "errors"

// Error taxonomy surfaced at handler boundaries. None of these are fatal
// to the process; handlers translate them to HTTP statuses and the app
// stays interactive.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("operation not permitted")
	ErrQuotaExhausted   = errors.New("download limit reached")
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrExternalService  = errors.New("external service failure")
)
