package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates missing outbound API settings.
	// An empty search API key is allowed: the report falls back to curated links.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidReportConfigs  = errors.New("invalid report configuration")
)
