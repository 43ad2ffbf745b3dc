package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/amishk599/careernav/internal/model"
)

// Ensure RetrySource implements model.RecommendationSource.
var _ model.RecommendationSource = (*RetrySource)(nil)

// RetrySource is a decorator that retries transient failures with exponential
// backoff and jitter before giving up on the wrapped source.
type RetrySource struct {
	inner      model.RecommendationSource
	maxRetries int
	baseDelay  time.Duration
	logger     *slog.Logger
}

// NewRetrySource wraps a RecommendationSource with retry logic.
// maxRetries is the number of additional attempts after the first failure.
// baseDelay is the delay before the first retry, doubled on each subsequent retry.
func NewRetrySource(inner model.RecommendationSource, maxRetries int, baseDelay time.Duration, logger *slog.Logger) *RetrySource {
	return &RetrySource{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		logger:     logger,
	}
}

// Recommend asks the wrapped source, retrying on transient errors.
func (r *RetrySource) Recommend(ctx context.Context, profile model.UserProfile) (*model.Snapshot, error) {
	snap, err := r.inner.Recommend(ctx, profile)
	if err == nil {
		return snap, nil
	}
	if !isRetryable(err) {
		return nil, err
	}

	lastErr := err
	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		delay := r.backoffDelay(attempt, lastErr)

		// The loader gives each fetch a deadline. A wait that outlives it
		// would only swap the engine's error for a bare timeout.
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < delay {
			r.logger.Warn("giving up, retry delay exceeds fetch deadline",
				"attempt", attempt,
				"delay", delay,
				"error", lastErr,
			)
			return nil, lastErr
		}

		r.logger.Warn("retrying after transient error",
			"attempt", attempt,
			"max_retries", r.maxRetries,
			"delay", delay,
			"error", lastErr,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-timer.C:
		}

		snap, err = r.inner.Recommend(ctx, profile)
		if err == nil {
			return snap, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// backoffDelay computes the delay for a given attempt with ±30% jitter.
// A Retry-After from the engine (HTTP 429/503) takes precedence.
func (r *RetrySource) backoffDelay(attempt int, err error) time.Duration {
	var httpErr *model.HTTPError
	if errors.As(err, &httpErr) && httpErr.RetryAfter > 0 {
		return httpErr.RetryAfter
	}

	delay := r.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
	}

	jitter := float64(delay) * 0.3
	return time.Duration(float64(delay) + (rand.Float64()*2-1)*jitter)
}

// isRetryable returns true if the error represents a transient failure worth retrying.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A malformed, oversized or rejected answer will not fix itself.
	var schemaErr *model.SchemaError
	if errors.As(err, &schemaErr) {
		return false
	}
	if errors.Is(err, model.ErrEngineRejected) || errors.Is(err, model.ErrResponseTooLarge) {
		return false
	}

	var httpErr *model.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 429 || httpErr.StatusCode >= 500
	}

	// Network, DNS and other transport errors.
	return true
}
