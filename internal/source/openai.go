package source

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"text/template"

	"github.com/amishk599/careernav/internal/model"
)

//go:embed prompts/recommend.md
var recommendPromptRaw string

// RecommendTemplate is the parsed prompt for snapshot generation.
var RecommendTemplate = template.Must(template.New("recommend").Parse(recommendPromptRaw))

// Ensure OpenAISource implements model.RecommendationSource.
var _ model.RecommendationSource = (*OpenAISource)(nil)

// OpenAISource asks an OpenAI-compatible /chat/completions endpoint to act as
// the recommendation engine, constrained to the snapshot schema.
type OpenAISource struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	tmpl       *template.Template
}

// NewOpenAISource creates a source targeting baseURL (e.g. https://api.openai.com/v1).
func NewOpenAISource(baseURL, apiKey, modelName string, httpClient *http.Client) *OpenAISource {
	return &OpenAISource{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      modelName,
		httpClient: httpClient,
		tmpl:       RecommendTemplate,
	}
}

// chatRequest mirrors the OpenAI /v1/chat/completions request body.
type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string         `json:"type"`
	JSONSchema jsonSchemaSpec `json:"json_schema"`
}

type jsonSchemaSpec struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

// chatResponse mirrors the relevant fields of the OpenAI response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Recommend renders the prompt for profile, calls the model and validates the
// JSON it returns.
func (s *OpenAISource) Recommend(ctx context.Context, profile model.UserProfile) (*model.Snapshot, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	var prompt bytes.Buffer
	if err := s.tmpl.Execute(&prompt, struct{ ProfileJSON string }{string(profileJSON)}); err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You generate structured career recommendations as JSON."},
			{Role: "user", Content: prompt.String()},
		},
		Temperature: 0.2,
		ResponseFormat: responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchemaSpec{
				Name:   "career_snapshot",
				Schema: schemaDocument(),
			},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal llm request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create llm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llm request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := readPayload(resp.Body)
	if err != nil && !errors.Is(err, model.ErrResponseTooLarge) {
		return nil, fmt.Errorf("read llm response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("llm: %s", snippet(respBytes)),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("llm response: %w", err)
	}

	// A 200 with a broken envelope is as final as a broken snapshot.
	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return nil, &model.SchemaError{Issues: []string{"parse llm response: " + err.Error()}}
	}
	if chatResp.Error != nil {
		return nil, fmt.Errorf("%w: llm error (%s): %s", model.ErrEngineRejected, chatResp.Error.Type, chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return nil, &model.SchemaError{Issues: []string{"llm returned no choices"}}
	}

	snap, err := decodeSnapshot([]byte(chatResp.Choices[0].Message.Content))
	if err != nil {
		return nil, fmt.Errorf("llm snapshot: %w", err)
	}
	return snap, nil
}
