package imdb

import (
	"errors"
	"fmt"
)

// Error codes for categorizing scrape failures
const (
	ErrCodeNetwork  = "NETWORK_ERROR"
	ErrCodeNotFound = "NOT_FOUND_ERROR"
	ErrCodeParse    = "PARSE_ERROR"
)

// ScrapeError represents a categorized error from a resolve or harvest
// operation. Every error is terminal for the run; nothing here is retried.
type ScrapeError struct {
	Code    string // Error category code
	Message string // Human-readable message
	Cause   error  // Underlying error
}

// Error implements the error interface.
func (e *ScrapeError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *ScrapeError) Unwrap() error {
	return e.Cause
}

// Is implements error matching for errors.Is().
func (e *ScrapeError) Is(target error) bool {
	var t *ScrapeError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Common error instances for comparison
var (
	ErrNetwork  = &ScrapeError{Code: ErrCodeNetwork, Message: "network error"}
	ErrNotFound = &ScrapeError{Code: ErrCodeNotFound, Message: "not found"}
	ErrParse    = &ScrapeError{Code: ErrCodeParse, Message: "parse error"}
)

// NewNetworkError creates a network error for a failed fetch. Covers
// timeouts, connection failures and non-OK status codes alike.
func NewNetworkError(message string, cause error) *ScrapeError {
	return &ScrapeError{
		Code:    ErrCodeNetwork,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(message string) *ScrapeError {
	return &ScrapeError{
		Code:    ErrCodeNotFound,
		Message: message,
	}
}

// NewParseError creates a parsing error.
func NewParseError(message string, cause error) *ScrapeError {
	return &ScrapeError{
		Code:    ErrCodeParse,
		Message: message,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	var scrapeErr *ScrapeError
	if errors.As(err, &scrapeErr) {
		return scrapeErr.Code
	}
	return ""
}
