package sanity

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedLimiter(now time.Time) *RateLimiter {
	r := NewRateLimiter()
	r.now = func() time.Time { return now }
	return r
}

func TestRateLimiter_BackoffSeconds(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := fixedLimiter(now)

	resp := &http.Response{Header: http.Header{"Retry-After": []string{"5"}}}

	assert.Equal(t, now.Add(5*time.Second), r.Backoff(resp))
}

func TestRateLimiter_BackoffHTTPDate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := fixedLimiter(now)

	resp := &http.Response{Header: http.Header{"Retry-After": []string{now.Add(time.Minute).Format(http.TimeFormat)}}}

	assert.Equal(t, now.Add(time.Minute), r.Backoff(resp))
}

func TestRateLimiter_BackoffDefault(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := fixedLimiter(now)

	assert.Equal(t, now.Add(DefaultBackoff), r.Backoff(&http.Response{Header: http.Header{}}))
	assert.Equal(t, now.Add(DefaultBackoff), r.Backoff(nil))
}

func TestRateLimiter_WaitWithoutBackoff(t *testing.T) {
	r := NewRateLimiter()

	require.NoError(t, r.Wait(context.Background()))
}

func TestRateLimiter_WaitCancelledDuringBackoff(t *testing.T) {
	r := NewRateLimiter()
	r.Backoff(&http.Response{Header: http.Header{"Retry-After": []string{"30"}}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Wait(ctx), context.Canceled)
}
