package services

import "errors"

// Terminal failure kinds for a pipeline request. None are retried
// internally; the handler layer maps each to a distinct status code
// and user-facing message.
var (
	ErrInvalidURL            = errors.New("invalid video URL")
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	ErrGenerationUnavailable = errors.New("generation unavailable")
	ErrEmptyResponse         = errors.New("model returned empty response")
	ErrInsufficientQuestions = errors.New("not enough questions generated")
)
