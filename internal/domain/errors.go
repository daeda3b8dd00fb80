package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the analysis engine.
var (
	// ErrInvalidRequest indicates a malformed caller input (unparseable
	// time string, missing field). Fatal to the invocation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConfiguration indicates inconsistent analysis parameters
	// (nuisance >= significant, non-positive window). Rejected before any
	// record processing begins.
	ErrConfiguration = errors.New("invalid analysis configuration")

	// ErrInsufficientData indicates that zero flights passed the window
	// filter. Surfaced as a distinct state so callers can tell "no data"
	// apart from "0% risk".
	ErrInsufficientData = errors.New("no flights matched the analysis window")

	// ErrNoHistory indicates that a source returned no records at all.
	ErrNoHistory = errors.New("no flight history available")

	// ErrSourceUnavailable indicates that a history source could not be
	// reached.
	ErrSourceUnavailable = errors.New("history source unavailable")
)

// ParseError reports a raw time or record that could not be normalized.
// The offending record is excluded from the sample and counted; it is
// never silently swallowed.
type ParseError struct {
	// Input is the raw value that failed to parse.
	Input string

	// Reason describes why parsing failed.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}

// NewParseError creates a ParseError for the given input.
func NewParseError(input, reason string) *ParseError {
	return &ParseError{Input: input, Reason: reason}
}

// SourceError wraps an error from a history source with the source name
// and a retryability hint for the I/O layer's retry policy.
type SourceError struct {
	// Source is the name of the source that failed.
	Source string

	// Err is the underlying error.
	Err error

	// Retryable indicates whether retrying the fetch may succeed.
	Retryable bool
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a non-retryable SourceError.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// NewRetryableSourceError creates a retryable SourceError.
func NewRetryableSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: true}
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsConfiguration reports whether err is or wraps ErrConfiguration.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsInsufficientData reports whether err is or wraps ErrInsufficientData.
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsSourceRetryable reports whether err is a retryable source error.
func IsSourceRetryable(err error) bool {
	var se *SourceError
	return errors.As(err, &se) && se.Retryable
}
