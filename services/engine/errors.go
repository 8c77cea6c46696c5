package engine

import "fmt"

// EngineError is the base error for unexpected provider-level faults
// (HTTP/network). The more specific types below wrap operation failures;
// callers branch on error identity with errors.As, never on message text.
type EngineError struct {
	Provider string
	Message  string
	Err      error
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *EngineError) Unwrap() error { return e.Err }

func NewEngineError(provider, message string, err error) *EngineError {
	return &EngineError{Provider: provider, Message: message, Err: err}
}

// ConfigurationError means bad or missing credentials or mode setup.
// Never retryable without operator action.
type ConfigurationError struct {
	Provider string
	Message  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s configuration: %s", e.Provider, e.Message)
}

func NewConfigurationError(provider, message string) *ConfigurationError {
	return &ConfigurationError{Provider: provider, Message: message}
}

// AvailabilityError means an availability or rate lookup failed. Safe to
// retry with backoff.
type AvailabilityError struct {
	Provider string
	Message  string
	Err      error
}

func (e *AvailabilityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s availability: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s availability: %s", e.Provider, e.Message)
}

func (e *AvailabilityError) Unwrap() error { return e.Err }

func NewAvailabilityError(provider, message string, err error) *AvailabilityError {
	return &AvailabilityError{Provider: provider, Message: message, Err: err}
}

// BookingError means a booking create, modify or cancel failed. Must not
// be blindly retried: a create may have partially succeeded provider-side.
type BookingError struct {
	Provider string
	Message  string
	Err      error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s booking: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s booking: %s", e.Provider, e.Message)
}

func (e *BookingError) Unwrap() error { return e.Err }

func NewBookingError(provider, message string, err error) *BookingError {
	return &BookingError{Provider: provider, Message: message, Err: err}
}
