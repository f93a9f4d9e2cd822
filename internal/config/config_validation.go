// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the merged [StructuredConfig] can start the server.
// All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordCost < 4 || cfg.App.PasswordCost > 31 {
		errs = append(errs, fmt.Errorf("%w: password cost must be in range 4..31", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}

	gen := cfg.Adapter.Generation
	if gen.BaseURL == "" || gen.Model == "" || gen.APIKey == "" || gen.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: generation base url, model, api key and timeout are required", ErrInvalidAdapterConfigs))
	}
	search := cfg.Adapter.Search
	if search.BaseURL == "" || search.Timeout <= 0 || search.MaxResults < 1 {
		errs = append(errs, fmt.Errorf("%w: search base url, timeout and max results are required", ErrInvalidAdapterConfigs))
	}

	if _, err := cfg.Report.Location(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidReportConfigs, err))
	}

	return errors.Join(errs...)
}
