package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amishk599/careernav/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockSource calls a function on each invocation, tracking call count.
type mockSource struct {
	calls int
	fn    func(attempt int) (*model.Snapshot, error)
}

func (m *mockSource) Recommend(_ context.Context, _ model.UserProfile) (*model.Snapshot, error) {
	m.calls++
	return m.fn(m.calls)
}

func sampleSnapshot() *model.Snapshot {
	return &model.Snapshot{
		JobRecommendations: []model.JobRecommendation{{ID: "1", Title: "Engineer"}},
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := &mockSource{fn: func(_ int) (*model.Snapshot, error) {
		return sampleSnapshot(), nil
	}}

	rs := NewRetrySource(mock, 2, 10*time.Millisecond, discardLogger())
	got, err := rs.Recommend(context.Background(), model.UserProfile{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.JobRecommendations) != 1 || got.JobRecommendations[0].ID != "1" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call, got %d", mock.calls)
	}
}

func TestRetry_RetriesOn5xx_SucceedsOnSecondAttempt(t *testing.T) {
	mock := &mockSource{fn: func(attempt int) (*model.Snapshot, error) {
		if attempt == 1 {
			return nil, &model.HTTPError{StatusCode: 503, Err: errors.New("service unavailable")}
		}
		return sampleSnapshot(), nil
	}}

	rs := NewRetrySource(mock, 2, 10*time.Millisecond, discardLogger())
	got, err := rs.Recommend(context.Background(), model.UserProfile{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got.JobRecommendations) != 1 {
		t.Fatalf("expected 1 job, got %+v", got)
	}
	if mock.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.calls)
	}
}

func TestRetry_DoesNotRetryOn4xx(t *testing.T) {
	mock := &mockSource{fn: func(_ int) (*model.Snapshot, error) {
		return nil, &model.HTTPError{StatusCode: 404, Err: errors.New("not found")}
	}}

	rs := NewRetrySource(mock, 2, 10*time.Millisecond, discardLogger())
	_, err := rs.Recommend(context.Background(), model.UserProfile{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != 404 {
		t.Fatalf("expected HTTPError with status 404, got %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.calls)
	}
}

func TestRetry_DoesNotRetrySchemaErrors(t *testing.T) {
	mock := &mockSource{fn: func(_ int) (*model.Snapshot, error) {
		return nil, &model.SchemaError{Issues: []string{"jobRecommendations is required"}}
	}}

	rs := NewRetrySource(mock, 3, 10*time.Millisecond, discardLogger())
	_, err := rs.Recommend(context.Background(), model.UserProfile{})
	var schemaErr *model.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.calls)
	}
}

func TestRetry_GivesUpAfterMaxRetries(t *testing.T) {
	mock := &mockSource{fn: func(_ int) (*model.Snapshot, error) {
		return nil, &model.HTTPError{StatusCode: 500, Err: errors.New("internal error")}
	}}

	rs := NewRetrySource(mock, 2, 10*time.Millisecond, discardLogger())
	_, err := rs.Recommend(context.Background(), model.UserProfile{})
	if err == nil {
		t.Fatal("expected error after max retries, got nil")
	}
	// 1 initial + 2 retries = 3
	if mock.calls != 3 {
		t.Fatalf("expected 3 calls (1 + 2 retries), got %d", mock.calls)
	}
}

func TestRetry_RespectsContextCancellation(t *testing.T) {
	mock := &mockSource{fn: func(_ int) (*model.Snapshot, error) {
		return nil, &model.HTTPError{StatusCode: 500, Err: errors.New("internal error")}
	}}

	ctx, cancel := context.WithCancel(context.Background())
	// Cancel immediately so the backoff sleep is interrupted.
	cancel()

	rs := NewRetrySource(mock, 2, time.Second, discardLogger())
	_, err := rs.Recommend(ctx, model.UserProfile{})
	if err == nil {
		t.Fatal("expected error from context cancellation, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call before cancellation, got %d", mock.calls)
	}
}

func TestRetry_GivesUpWhenDelayOutlivesDeadline(t *testing.T) {
	mock := &mockSource{fn: func(_ int) (*model.Snapshot, error) {
		return nil, &model.HTTPError{StatusCode: 429, RetryAfter: time.Minute, Err: errors.New("slow down")}
	}}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	rs := NewRetrySource(mock, 3, 10*time.Millisecond, discardLogger())
	_, err := rs.Recommend(ctx, model.UserProfile{})

	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != 429 {
		t.Fatalf("expected the 429 HTTPError, got %v", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected engine error, not a timeout: %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call, got %d", mock.calls)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("expected to give up without waiting, took %v", elapsed)
	}
}

func TestRetry_RetriesWithinDeadline(t *testing.T) {
	mock := &mockSource{fn: func(attempt int) (*model.Snapshot, error) {
		if attempt == 1 {
			return nil, &model.HTTPError{StatusCode: 503, RetryAfter: 20 * time.Millisecond}
		}
		return sampleSnapshot(), nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rs := NewRetrySource(mock, 2, 10*time.Millisecond, discardLogger())
	if _, err := rs.Recommend(ctx, model.UserProfile{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.calls)
	}
}

func TestBackoffDelay_UsesRetryAfter(t *testing.T) {
	rs := NewRetrySource(nil, 2, time.Second, discardLogger())
	err := &model.HTTPError{StatusCode: 429, RetryAfter: 7 * time.Second}

	if got := rs.backoffDelay(1, err); got != 7*time.Second {
		t.Fatalf("expected Retry-After delay 7s, got %v", got)
	}
}

func TestBackoffDelay_GrowsWithJitter(t *testing.T) {
	rs := NewRetrySource(nil, 3, 100*time.Millisecond, discardLogger())

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
	}
	for _, tt := range tests {
		got := rs.backoffDelay(tt.attempt, errors.New("boom"))
		lo := time.Duration(float64(tt.base) * 0.7)
		hi := time.Duration(float64(tt.base) * 1.3)
		if got < lo || got > hi {
			t.Errorf("attempt %d: delay %v outside [%v, %v]", tt.attempt, got, lo, hi)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"wrapped deadline", errors.Join(errors.New("fetch"), context.DeadlineExceeded), false},
		{"schema", &model.SchemaError{}, false},
		{"engine rejected", fmt.Errorf("%w: llm error (invalid_request): bad", model.ErrEngineRejected), false},
		{"too large", fmt.Errorf("llm response: %w", model.ErrResponseTooLarge), false},
		{"429", &model.HTTPError{StatusCode: 429}, true},
		{"502", &model.HTTPError{StatusCode: 502}, true},
		{"400", &model.HTTPError{StatusCode: 400}, false},
		{"network", errors.New("connection refused"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
