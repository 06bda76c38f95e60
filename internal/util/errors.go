package util

import "errors"

var (
	ErrQuestionIDRequired = errors.New("question id is required")
	ErrEmptyOptionLabel   = errors.New("Option labels cannot be empty")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// IsValidationError reports whether err should surface as a 400 rather
// than a store failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrQuestionIDRequired) || errors.Is(err, ErrEmptyOptionLabel)
}
