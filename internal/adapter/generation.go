package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
)

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// joinedText concatenates parts in order. A single answer may be split
// across several parts.
func (c content) joinedText() string {
	var sb strings.Builder
	for _, p := range c.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

type geminiTextGenerator struct {
	client *utils.HTTPClient
	model  string
	apiKey string
}

// NewGeminiTextGenerator returns a [TextGenerator] that calls the
// generateContent method of the Gemini REST API.
//
// Requests go to {BaseURL}/models/{Model}:generateContent with the API key
// passed as the "key" query parameter. Each call is bounded by cfg.Timeout
// and is never retried.
func NewGeminiTextGenerator(cfg config.Generation, log *logger.Logger) (TextGenerator, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("generation adapter: %w", err)
	}

	log.Info().
		Str("func", "adapter.NewGeminiTextGenerator").
		Str("base_url", baseURL).
		Str("model", cfg.Model).
		Dur("timeout", cfg.Timeout).
		Msg("text generation client configured")

	return &geminiTextGenerator{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
	}, nil
}

// Generate implements [TextGenerator]. It sends prompt as the only user part
// and returns the text of the first candidate, all of its parts joined.
func (g *geminiTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetPathParam("model", g.model).
		SetBody(generateContentRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		}).
		Post("/models/{model}:generateContent")
	if err != nil {
		log.Err(err).Str("func", "geminiTextGenerator.Generate").Msg("generation request failed")
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Error().
			Str("func", "geminiTextGenerator.Generate").
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("generation request rejected")
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	var body generateContentResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrGeneration, err)
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		event := log.Warn().Str("func", "geminiTextGenerator.Generate")
		if body.PromptFeedback != nil {
			event = event.Str("block_reason", body.PromptFeedback.BlockReason)
		}
		event.Msg("generation response has no text")
		return "", nil
	}

	text := body.Candidates[0].Content.joinedText()
	log.Debug().
		Str("func", "geminiTextGenerator.Generate").
		Int("prompt_len", len(prompt)).
		Int("answer_len", len(text)).
		Str("finish_reason", body.Candidates[0].FinishReason).
		Msg("generation succeeded")

	return text, nil
}
