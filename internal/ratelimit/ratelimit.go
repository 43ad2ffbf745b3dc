package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amishk599/careernav/internal/model"
)

// EndpointLimiter spaces out requests to the same recommendation endpoint.
// Requests to different endpoints never wait on each other.
type EndpointLimiter struct {
	mu          sync.Mutex
	lastCall    map[string]time.Time // key: endpoint URL or source name
	minInterval time.Duration
}

// NewEndpointLimiter creates a limiter that keeps at least minInterval
// between consecutive requests to one endpoint. Zero disables waiting.
func NewEndpointLimiter(minInterval time.Duration) *EndpointLimiter {
	return &EndpointLimiter{
		lastCall:    make(map[string]time.Time),
		minInterval: minInterval,
	}
}

// Wait blocks until the endpoint may be called again, or ctx is done.
func (l *EndpointLimiter) Wait(ctx context.Context, endpoint string) error {
	l.mu.Lock()
	last, seen := l.lastCall[endpoint]
	now := time.Now()
	if !seen || now.Sub(last) >= l.minInterval {
		l.lastCall[endpoint] = now
		l.mu.Unlock()
		return nil
	}
	remaining := l.minInterval - now.Sub(last)
	// Reserve the slot so concurrent callers queue behind this one.
	l.lastCall[endpoint] = now.Add(remaining)
	l.mu.Unlock()

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter wait for %s: %w", endpoint, ctx.Err())
	case <-timer.C:
		return nil
	}
}

// Ensure RateLimitedSource implements model.RecommendationSource.
var _ model.RecommendationSource = (*RateLimitedSource)(nil)

// RateLimitedSource waits on an EndpointLimiter before delegating.
type RateLimitedSource struct {
	inner    model.RecommendationSource
	limiter  *EndpointLimiter
	endpoint string
}

// NewRateLimitedSource wraps inner so calls to endpoint respect limiter.
// Sources sharing an endpoint should share the limiter instance.
func NewRateLimitedSource(inner model.RecommendationSource, limiter *EndpointLimiter, endpoint string) *RateLimitedSource {
	return &RateLimitedSource{inner: inner, limiter: limiter, endpoint: endpoint}
}

// Recommend waits for the limiter, then asks the wrapped source.
func (s *RateLimitedSource) Recommend(ctx context.Context, profile model.UserProfile) (*model.Snapshot, error) {
	if err := s.limiter.Wait(ctx, s.endpoint); err != nil {
		return nil, err
	}
	return s.inner.Recommend(ctx, profile)
}
