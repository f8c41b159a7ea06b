package sanity

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// RequestsPerSecond stays well below the API's per-client limit.
	RequestsPerSecond = 10.0

	// BurstSize lets a sync fetch all three collections at once.
	BurstSize = 3

	// DefaultBackoff is used when a 429 carries no usable Retry-After.
	DefaultBackoff = 30 * time.Second

	headerRetryAfter = "Retry-After"
)

// RateLimiter is a token bucket plus a backoff window set by 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	now     func() time.Time
}

// NewRateLimiter creates a limiter with the default rate.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(RequestsPerSecond), BurstSize),
		now:     time.Now,
	}
}

// Wait blocks until the backoff window has passed and a token is available.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	now := r.now()
	r.mu.Unlock()

	if now.Before(retryAt) {
		timer := time.NewTimer(retryAt.Sub(now))
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return r.limiter.Wait(ctx)
}

// Backoff records a 429 response and returns when requests may resume.
// Retry-After is read as seconds or as an HTTP date.
func (r *RateLimiter) Backoff(resp *http.Response) time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	wait := DefaultBackoff
	if resp != nil {
		if v := resp.Header.Get(headerRetryAfter); v != "" {
			if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
				wait = time.Duration(secs) * time.Second
			} else if at, err := http.ParseTime(v); err == nil {
				wait = at.Sub(now)
			}
		}
	}
	if wait < 0 {
		wait = 0
	}

	r.retryAt = now.Add(wait)
	return r.retryAt
}

// RetryAt returns the end of the current backoff window.
func (r *RateLimiter) RetryAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt
}
