package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoProfile is returned when an operation needs a submitted profile.
var ErrNoProfile = errors.New("no profile submitted")

// ErrEngineRejected marks a request the engine answered with an in-body
// error. Sending the same profile again gets the same answer.
var ErrEngineRejected = errors.New("recommendation engine rejected request")

// ErrResponseTooLarge is returned when a response body exceeds the read limit.
var ErrResponseTooLarge = errors.New("response too large")

// HTTPError wraps an HTTP status code so retry logic can inspect it.
type HTTPError struct {
	StatusCode int
	RetryAfter time.Duration // from Retry-After header, zero if absent
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// SchemaError reports a snapshot payload that does not match the expected shape.
// It is never retried.
type SchemaError struct {
	Issues []string
}

func (e *SchemaError) Error() string {
	return "snapshot payload invalid: " + strings.Join(e.Issues, "; ")
}
