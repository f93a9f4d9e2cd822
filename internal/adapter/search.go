package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// maxSearchResults is the largest page the Custom Search API returns.
const maxSearchResults = 10

type customSearchResponse struct {
	Items []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"items"`
}

type customSearchClient struct {
	client   *utils.HTTPClient
	apiKey   string
	engineID string
}

// NewCustomSearchClient returns a [WebSearcher] backed by the Google Custom
// Search JSON API. Without an API key or engine id the client is still
// usable and every search resolves to an empty list.
func NewCustomSearchClient(cfg config.Search, log *logger.Logger) (WebSearcher, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("search adapter: %w", err)
	}

	event := log.Info()
	if cfg.APIKey == "" || cfg.EngineID == "" {
		event = log.Warn()
	}
	event.
		Str("func", "adapter.NewCustomSearchClient").
		Str("base_url", baseURL).
		Bool("credentials", cfg.APIKey != "" && cfg.EngineID != "").
		Dur("timeout", cfg.Timeout).
		Msg("web search client configured")

	return &customSearchClient{
		client:   utils.NewHTTPClient(baseURL, cfg.Timeout),
		apiKey:   cfg.APIKey,
		engineID: cfg.EngineID,
	}, nil
}

// Search implements [WebSearcher].
func (c *customSearchClient) Search(ctx context.Context, query string, maxResults int) []models.Recommendation {
	log := logger.FromContext(ctx)

	recommendations, err := c.search(ctx, strings.TrimSpace(query), maxResults)
	if err != nil {
		log.Warn().
			Str("func", "customSearchClient.Search").
			Str("query", query).
			Err(err).
			Msg("web search failed")
		return []models.Recommendation{}
	}

	log.Info().
		Str("func", "customSearchClient.Search").
		Str("query", query).
		Int("results", len(recommendations)).
		Msg("web search finished")
	return recommendations
}

func (c *customSearchClient) search(ctx context.Context, query string, maxResults int) ([]models.Recommendation, error) {
	if query == "" || maxResults <= 0 {
		return []models.Recommendation{}, nil
	}
	if c.apiKey == "" || c.engineID == "" {
		return nil, fmt.Errorf("%w: client has no credentials", ErrSearch)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": c.apiKey,
			"cx":  c.engineID,
			"q":   query,
			"num": strconv.Itoa(min(maxResults, maxSearchResults)),
		}).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}

	var body customSearchResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrSearch, err)
	}

	recommendations := make([]models.Recommendation, 0, maxResults)
	for _, item := range body.Items {
		if len(recommendations) == maxResults {
			break
		}
		title, link := strings.TrimSpace(item.Title), strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}
		recommendations = append(recommendations, models.Recommendation{Title: title, Link: link})
	}

	return recommendations, nil
}
