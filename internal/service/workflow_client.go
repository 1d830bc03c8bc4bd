package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/makemymate/makemymate-api/config"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// WorkflowCharacter is the normalized result of one generation call.
type WorkflowCharacter struct {
	Name        string
	Title       string
	Description string
	Traits      []string
	Personality string
	Background  string
	Aesthetic   string
	ImageURL    string
	ImagePrompt string
}

// WorkflowClient calls the remote character-generation workflow. One synchronous
// attempt per call: no retry, no backoff, transport-default timeout.
type WorkflowClient interface {
	Generate(ctx context.Context, answers []dto.QuizAnswerDTO, languageCode string, sessionID string) (*WorkflowCharacter, error)
}

type workflowClient struct {
	endpointURL string
	httpClient  *http.Client
}

func NewWorkflowClient(cfg *config.Config) WorkflowClient {
	if cfg.Workflow.EndpointURL == "" {
		log.Warn().Msg("Workflow endpoint URL is not configured; generation calls will fail")
	}
	return &workflowClient{
		endpointURL: cfg.Workflow.EndpointURL,
		httpClient:  http.DefaultClient,
	}
}

type workflowEnvelope struct {
	QuizAnswers []dto.QuizAnswerDTO `json:"quizAnswers"`
	Language    string              `json:"language"`
	Timestamp   string              `json:"timestamp"`
	SessionID   string              `json:"sessionId"`
}

type workflowResponse struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Traits      json.RawMessage `json:"traits"`
	Personality string          `json:"personality"`
	Background  string          `json:"background"`
	Aesthetic   string          `json:"aesthetic"`
	ImageURL    string          `json:"imageUrl"`
	ImagePrompt string          `json:"imagePrompt"`
}

func (c *workflowClient) Generate(ctx context.Context, answers []dto.QuizAnswerDTO, languageCode string, sessionID string) (*WorkflowCharacter, error) {
	if c.endpointURL == "" {
		return nil, &GenerationError{Err: fmt.Errorf("workflow endpoint URL not configured")}
	}

	envelope := workflowEnvelope{
		QuizAnswers: answers,
		Language:    languageCode,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		SessionID:   sessionID,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, &GenerationError{Err: fmt.Errorf("failed to encode workflow request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Workflow request failed")
		return nil, &GenerationError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Str("sessionID", sessionID).Msg("Workflow returned non-success status")
		return nil, &GenerationError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Err: fmt.Errorf("failed to read workflow response: %w", err)}
	}
	var parsed workflowResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &GenerationError{Err: fmt.Errorf("failed to decode workflow response: %w", err)}
	}

	return &WorkflowCharacter{
		Name:        parsed.Name,
		Title:       parsed.Title,
		Description: parsed.Description,
		Traits:      normalizeTraits(parsed.Traits),
		Personality: parsed.Personality,
		Background:  parsed.Background,
		Aesthetic:   parsed.Aesthetic,
		ImageURL:    parsed.ImageURL,
		ImagePrompt: parsed.ImagePrompt,
	}, nil
}

// normalizeTraits accepts a JSON array, a JSON-encoded string holding an array, or a
// plain string. A string that fails to decode becomes a single-element list rather
// than failing the whole generation.
func normalizeTraits(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var traits []string
	if err := json.Unmarshal(raw, &traits); err == nil {
		return traits
	}

	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		log.Warn().Str("traits", string(raw)).Msg("Unrecognized traits payload, dropping it")
		return nil
	}
	if err := json.Unmarshal([]byte(single), &traits); err == nil {
		return traits
	}
	return []string{single}
}
