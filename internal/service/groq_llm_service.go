package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lshigami/SkillCheck/config"
	"github.com/rs/zerolog/log"
)

const groqSystemPrompt = "You are a precise assistant for a recruiting platform. Reply with a single JSON object and nothing else."

// groqLLMService talks to any OpenAI compatible chat completions endpoint; Groq by default.
type groqLLMService struct {
	apiKey string
	model  string
	base   string
	http   *http.Client
}

func NewGroqLLMService(cfg *config.Config) LLMProvider {
	if cfg.LLM.GroqApiKey == "" {
		log.Warn().Msg("GROQ_API_KEY is not set. Requests to Groq will be rejected.")
	}
	return &groqLLMService{
		apiKey: cfg.LLM.GroqApiKey,
		model:  cfg.LLM.GroqModel,
		base:   strings.TrimRight(cfg.LLM.GroqBaseURL, "/"),
		http:   &http.Client{Timeout: cfg.LLM.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float32           `json:"temperature,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (s *groqLLMService) Name() string { return "groq" }

func (s *groqLLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: groq api key not configured", ErrCollaboratorFailure)
	}
	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: groqSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.4,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("encode groq request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.base+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build groq request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Groq API request failed")
		return "", fmt.Errorf("%w: groq: %v", ErrCollaboratorFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read groq response: %v", ErrCollaboratorFailure, err)
	}
	if resp.StatusCode >= 400 {
		log.Error().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("Groq API returned an error status")
		return "", fmt.Errorf("%w: groq api status %d", ErrCollaboratorFailure, resp.StatusCode)
	}

	var ch chatResponse
	if err := json.Unmarshal(raw, &ch); err != nil {
		return "", fmt.Errorf("%w: decode groq response: %v", ErrCollaboratorFailure, err)
	}
	if ch.Error != nil {
		return "", fmt.Errorf("%w: groq: %s", ErrCollaboratorFailure, ch.Error.Message)
	}
	if len(ch.Choices) == 0 || strings.TrimSpace(ch.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: groq returned no choices", ErrCollaboratorFailure)
	}
	return ch.Choices[0].Message.Content, nil
}
