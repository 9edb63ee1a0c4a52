package domain

import (
	"errors"
	"fmt"
)

// sentinel errors shared by all layers
var (
	ErrNotFound            = errors.New("not found")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrRateLimited         = errors.New("rate limited")
)

// ValidationError reports malformed input with the offending field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Message
	}
	return fmt.Sprintf("validation: %s %s", e.Field, e.Message)
}

// ProviderError is a terminal adapter failure
type ProviderError struct {
	Provider ProviderType
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// RateLimitError is a transient provider throttling, matches ErrRateLimited with errors.Is
type RateLimitError struct {
	Provider ProviderType
	Message  string
}

func (e *RateLimitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider %s: rate limited", e.Provider)
	}
	return fmt.Sprintf("provider %s: rate limited: %s", e.Provider, e.Message)
}

// Is makes errors.Is(err, ErrRateLimited) true
func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }

// IsValidation reports whether err is or wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
