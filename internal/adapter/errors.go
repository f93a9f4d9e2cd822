package adapter

import "errors"

// Errors mapped from upstream HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrGeneration wraps every failure of a text generation call: transport
	// errors, non-2xx answers and undecodable bodies.
	ErrGeneration = errors.New("text generation failed")

	// ErrSearch never leaves this package. The search client logs it and
	// returns an empty result instead.
	ErrSearch = errors.New("web search failed")

	ErrInvalidBaseURL = errors.New("invalid adapter base url")
)
