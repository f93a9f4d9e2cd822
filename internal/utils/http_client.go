package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client used by the outbound adapters.
// It carries only immutable configuration, so one instance is safe to share
// between concurrent requests.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL with a per-request timeout.
// Retries are disabled: every outbound call is a single attempt.
//
//	client := utils.NewHTTPClient("https://api.example.com", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/v1/items")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
