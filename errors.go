package hxshop

import (
	"errors"
	"fmt"
)

// Sentinel errors for page loading and region delivery.
var (
	ErrCriticalQuery    = errors.New("hxshop: critical query failed")
	ErrDuplicateQuery   = errors.New("hxshop: duplicate query name")
	ErrUnknownRegion    = errors.New("hxshop: unknown region")
	ErrSignatureInvalid = errors.New("hxshop: signature verification failed")
	ErrInvalidFormat    = errors.New("hxshop: invalid token format")
)

// CriticalError reports the critical query that failed a page load.
type CriticalError struct {
	Query string
	Err   error
}

func (e *CriticalError) Error() string {
	return fmt.Sprintf("hxshop: critical query %q: %v", e.Query, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *CriticalError) Unwrap() []error {
	return []error{ErrCriticalQuery, e.Err}
}

// IsCritical checks if err is a critical-query failure.
func IsCritical(err error) bool {
	return errors.Is(err, ErrCriticalQuery)
}

// IsNotFound checks if err names a region that is not registered.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownRegion)
}

// IsTokenError checks if err is a region token decoding error.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrSignatureInvalid) || errors.Is(err, ErrInvalidFormat)
}
