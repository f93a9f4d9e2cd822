package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNoDiaryEntries = errors.New("no diary entries for this period")

	// ErrReportGenerationFailed wraps every text generation and parse failure
	// of the report pipeline. Nothing is stored when it is returned.
	ErrReportGenerationFailed = errors.New("report generation failed")
)
