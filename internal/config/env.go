package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a StructuredConfig from the process environment. Variable
// names are the `envPrefix` chain plus the field's `env` tag, for example
// ADAPTER_GENERATION_API_KEY. Unset variables leave zero values, which the
// merge step treats as "not provided".
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
