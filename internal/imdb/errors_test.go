package imdb

import (
	"errors"
	"fmt"
	"testing"
)

func TestScrapeError_Is(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewNetworkError("HTTP request failed", cause)

	if !errors.Is(err, ErrNetwork) {
		t.Error("network error should match ErrNetwork")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("network error should not match ErrNotFound")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestScrapeError_Error(t *testing.T) {
	err := NewNotFoundError("no search results")
	want := "[NOT_FOUND_ERROR] no search results"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"parse error", NewParseError("bad token", nil), ErrCodeParse},
		{"wrapped", fmt.Errorf("resolve: %w", NewNotFoundError("gone")), ErrCodeNotFound},
		{"plain error", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}
