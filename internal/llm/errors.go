package llm

import "errors"

var (
	// ErrNoAPIKey indicates no credential is configured; no call was attempted.
	ErrNoAPIKey = errors.New("no API key configured")

	// ErrUnavailable indicates the generation API could not be reached.
	ErrUnavailable = errors.New("generation API unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrEmptyResponse indicates the API answered without any candidate text.
	ErrEmptyResponse = errors.New("empty generation response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)
