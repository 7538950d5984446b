package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the booking flow.
var (
	// ErrInvalidRequest indicates the caller supplied invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStoreNotInitialized is returned when booking state is read outside a bound session scope.
	ErrStoreNotInitialized = errors.New("store not initialized")

	// ErrSessionNotFound indicates the session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrMissingBookingContext indicates a booking step was requested before
	// search parameters were set or a flight was selected.
	ErrMissingBookingContext = errors.New("missing booking context")

	// ErrFlightNotFound indicates the selected flight id is not among the current results.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrPassengerNotFound indicates a roster update referenced an unknown passenger id.
	ErrPassengerNotFound = errors.New("passenger not found")

	// ErrPassengerFloor is returned when a passenger count would drop below its minimum.
	ErrPassengerFloor = errors.New("passenger count below minimum")

	// ErrPassengerLimit is returned when the total number of seats would exceed MaxPassengers.
	ErrPassengerLimit = errors.New("passenger count above maximum")

	// ErrSearchFailed indicates the flight search could not produce results.
	ErrSearchFailed = errors.New("flight search failed")

	// ErrProviderTimeout indicates the search endpoint did not answer in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates the search endpoint is unreachable or failing.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ProviderError wraps a failure from a flight source with the source name.
type ProviderError struct {
	Provider  string
	Err       error
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a provider error that may succeed on retry.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a retryable timeout error for the provider.
func NewProviderTimeoutError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderTimeout)
}

// NewProviderUnavailableError creates a retryable unavailability error for the provider.
func NewProviderUnavailableError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderUnavailable)
}

// IsRetryable reports whether err is a ProviderError marked retryable.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every field violation of a request instead of
// stopping at the first one.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Add records a violation.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

// HasErrors returns true if at least one violation was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is(err, ErrInvalidRequest) succeed for validation failures.
func (v *ValidationErrors) Unwrap() error {
	return ErrInvalidRequest
}

// ToMap converts the violations to a field -> message map. When a field has
// several violations the first one wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, exists := result[e.Field]; !exists {
			result[e.Field] = e.Message
		}
	}
	return result
}

// RosterValidationError carries the ordered, human-readable messages produced
// by passenger roster validation.
type RosterValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *RosterValidationError) Error() string {
	return fmt.Sprintf("%d passenger field(s) missing: %s", len(e.Messages), strings.Join(e.Messages, "; "))
}

// Unwrap lets errors.Is(err, ErrInvalidRequest) succeed for roster failures.
func (e *RosterValidationError) Unwrap() error {
	return ErrInvalidRequest
}
