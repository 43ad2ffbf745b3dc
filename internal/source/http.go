package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/careernav/internal/model"
)

// maxPayloadBytes bounds how much of a response body is read.
const maxPayloadBytes = 8 << 20

// readPayload reads at most maxPayloadBytes of body. A longer body returns
// the truncated bytes together with model.ErrResponseTooLarge.
func readPayload(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxPayloadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxPayloadBytes {
		return data[:maxPayloadBytes], fmt.Errorf("%w: more than %d bytes", model.ErrResponseTooLarge, maxPayloadBytes)
	}
	return data, nil
}

// Ensure HTTPSource implements model.RecommendationSource.
var _ model.RecommendationSource = (*HTTPSource)(nil)

// HTTPSource posts the profile to a recommendation engine and decodes the
// snapshot it answers with.
type HTTPSource struct {
	url    string
	apiKey string
	client *http.Client
}

// NewHTTPSource creates a source for the engine at url. apiKey may be empty.
func NewHTTPSource(url, apiKey string, client *http.Client) *HTTPSource {
	return &HTTPSource{url: url, apiKey: apiKey, client: client}
}

// Recommend sends profile as JSON and returns the validated snapshot.
// Non-200 answers come back as *model.HTTPError.
func (s *HTTPSource) Recommend(ctx context.Context, profile model.UserProfile) (*model.Snapshot, error) {
	body, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := readPayload(resp.Body)
	if err != nil && !errors.Is(err, model.ErrResponseTooLarge) {
		return nil, fmt.Errorf("read recommendation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("recommendation engine: %s", snippet(payload)),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("recommendation response: %w", err)
	}

	snap, err := decodeSnapshot(payload)
	if err != nil {
		return nil, fmt.Errorf("recommendation response: %w", err)
	}
	return snap, nil
}

// parseRetryAfter parses the Retry-After header value into a duration.
// Supports seconds format (e.g. "120"). Returns zero if absent or unparseable.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// snippet trims an error body to something that fits on one log line.
func snippet(body []byte) string {
	s := strings.Join(strings.Fields(string(body)), " ")
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	if s == "" {
		s = "empty response"
	}
	return s
}
