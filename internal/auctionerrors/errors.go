package auctionerrors

import (
	"errors"
	"sort"
	"strings"
)

// Repository-level errors
var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrNoBids           = errors.New("no bids found for listing")
	ErrWatchNotFound    = errors.New("watch entry not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// business logic errors
var (
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrListingInactive = errors.New("listing is closed")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError carries per-field messages for malformed input.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add records a message for field, keeping the first one reported.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns e when it has fields and nil otherwise.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
