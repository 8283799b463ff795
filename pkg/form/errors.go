package form

import "errors"

var (
	// ErrInvalidQuestionID signals an answer for an id the set does not define.
	ErrInvalidQuestionID = errors.New("form: invalid question id")
	// ErrTypeMismatch signals a string answer for a set question or vice versa.
	ErrTypeMismatch = errors.New("form: answer type mismatch")
	// ErrNoQuestions is returned when a controller is built over an empty set.
	ErrNoQuestions = errors.New("form: question set is empty")
)
