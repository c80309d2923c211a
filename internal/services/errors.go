package services

import (
	"errors"
)

var (
	ErrSessionNotFound      = errors.New("test session not found")
	ErrQuestionNotFound     = errors.New("question is not part of this test")
	ErrTestAlreadySubmitted = errors.New("test already submitted")
	ErrTestNotSubmitted     = errors.New("test has not been submitted yet")
)

// IsNotFound reports whether err maps to a 404 at the HTTP boundary.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrQuestionNotFound)
}

// IsConflict reports whether err maps to a 409 at the HTTP boundary.
func IsConflict(err error) bool {
	return errors.Is(err, ErrTestAlreadySubmitted)
}
