package errors

import "errors"

var (
	ErrWorkSystemNotFound = errors.New("work system not found")
	ErrInvalidAccessData  = errors.New("invalid access request data")

	// ErrStoreUnavailable means a ledger or rule read, or the counter write,
	// could not complete. Callers surface it as a retryable failure, never as
	// a denial.
	ErrStoreUnavailable = errors.New("access store unavailable")
)
