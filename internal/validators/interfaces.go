// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Validators are injected into the validation wrappers of the service layer
// (see service.DiaryService). Each implementation accepts a fixed set of
// models, by value or pointer, and can be scoped to named fields:
//
//	err := v.Validate(ctx, entry, validators.FieldSlot, validators.FieldContent)
//
// Implementations: DiaryValidator, ReportPeriodValidator, UserValidator.
package validators

import "context"

// Validator checks a model against domain rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
