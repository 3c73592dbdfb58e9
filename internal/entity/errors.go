package entity

import "errors"

// Domain errors
var (
	// Interview errors
	ErrNoSession         = errors.New("no active session")
	ErrNoCurrentQuestion = errors.New("no current question")
	ErrSubmitInFlight    = errors.New("answer submission already in flight")
	ErrInterviewDone     = errors.New("interview is already completed")
	ErrSessionNotFound   = errors.New("session not found")

	// Generation errors
	ErrEmptyContent       = errors.New("generated content is empty")
	ErrGenerationNotFound = errors.New("generation result not available")

	// Template errors
	ErrTemplateNotFound = errors.New("template not found")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidAnswer    = errors.New("invalid answer")
	ErrInvalidParameter = errors.New("invalid parameter")
)
