// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP clients used by the report
// pipeline: a generative-text client and a web-search client.
//
// Both clients are single-attempt. They keep only immutable configuration
// (endpoint, credentials, timeout), so one instance serves concurrent
// requests. Upstream status codes are mapped to the sentinel errors in
// errors.go by mapHTTPError.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TextGenerator sends one prompt to a generative-text model.
type TextGenerator interface {
	// Generate returns the raw text of the model answer. Any transport
	// failure or non-2xx answer is returned wrapped in [ErrGeneration].
	// A well-formed answer without text yields an empty string and no error.
	Generate(ctx context.Context, prompt string) (string, error)
}

// WebSearcher looks up links for a short query.
type WebSearcher interface {
	// Search returns at most maxResults recommendations in the order the
	// search engine ranked them. Results without a title or link are
	// dropped. Failures are logged and produce an empty list.
	Search(ctx context.Context, query string, maxResults int) []models.Recommendation
}
