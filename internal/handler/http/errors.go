// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request parsing errors. All of them end up as 400 Bad Request.
var (
	ErrInvalidJSON        = errors.New("invalid JSON was passed")
	ErrInvalidEntryID     = errors.New("diary id must be a positive integer")
	ErrInvalidPeriodQuery = errors.New("start and end must be RFC3339 timestamps")
	ErrInvalidYearMonth   = errors.New("yearMonth must be formatted as YYYY-MM")
	ErrInvalidYearOrMonth = errors.New("year and month must be integers")
	ErrMissingUserID      = errors.New("no authenticated user in request context")
)
