package assessment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuestionShape marks a question whose structure does not match its type.
	ErrInvalidQuestionShape = errors.New("invalid question shape")
	// ErrMalformedTest is discovered while grading, e.g. a multiple-choice question without a correct option.
	ErrMalformedTest = errors.New("malformed test")
)

// QuestionError ties a structural error to the question it was found on.
type QuestionError struct {
	Index      int // 0-based position in the test
	QuestionID string
	Err        error
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("question %s (position %d): %v", e.QuestionID, e.Index+1, e.Err)
}

func (e *QuestionError) Unwrap() error { return e.Err }

// CountMismatch is a soft warning: the generator returned a different number of
// questions than requested. It is never returned as a failure.
type CountMismatch struct {
	Requested int
	Generated int
}

func (w *CountMismatch) Error() string {
	return fmt.Sprintf("requested %d questions, generated %d", w.Requested, w.Generated)
}

func shapeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuestionShape, fmt.Sprintf(format, args...))
}
