package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/SkillCheck/internal/assessment"
)

var (
	ErrTestNotFound    = errors.New("test not found")
	ErrAttemptNotFound = errors.New("test attempt not found")
	// ErrInvalidInput marks a request that fails validation before reaching the generative model.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCollaboratorFailure covers provider errors, empty output, undecodable JSON and
	// output that violates its schema. The client may resubmit; calls are never retried here.
	ErrCollaboratorFailure = errors.New("generative collaborator failure")
)

// InvalidTestError rejects an authored test; it carries one entry per bad question.
type InvalidTestError struct {
	Problems []*assessment.QuestionError
}

func (e *InvalidTestError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return fmt.Sprintf("%d invalid question(s): %s", len(e.Problems), strings.Join(msgs, "; "))
}

func (e *InvalidTestError) Unwrap() error { return assessment.ErrInvalidQuestionShape }
