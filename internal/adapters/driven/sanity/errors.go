package sanity

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// ErrNotConfigured indicates the project id is missing.
var ErrNotConfigured = errors.New("sanity: project id not configured")

// APIError is a non-2xx response from the query API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("sanity: API error %d (%s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("sanity: API error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps transport failures onto the domain sentinels.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode >= 500:
		return domain.ErrStoreUnavailable
	default:
		return nil
	}
}

// RateLimitError is returned for 429 responses.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("sanity: rate limit exceeded, retry at %s", e.RetryAt.Format(time.RFC3339))
}

func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// IsUnauthorized reports whether the token was missing or rejected.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}
