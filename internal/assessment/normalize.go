package assessment

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinOptions         = 2
	MaxOptions         = 5
	MinQuestionTextLen = 10
)

// QuestionID returns the canonical id for the question at 0-based position i.
func QuestionID(i int) string {
	return "q" + strconv.Itoa(i+1)
}

// OptionID returns the canonical id for option j of question i, both 0-based.
func OptionID(i, j int) string {
	return QuestionID(i) + "o" + strconv.Itoa(j+1)
}

// AssignCanonicalIDs renumbers questions to q1..qN and multiple-choice options to
// q{n}o1..q{n}oM by position. The input slice is left untouched.
func AssignCanonicalIDs(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.ID = QuestionID(i)
		if len(q.Options) > 0 {
			opts := make([]Option, len(q.Options))
			for j, o := range q.Options {
				if q.Type == TypeMultipleChoice {
					o.ID = OptionID(i, j)
				}
				opts[j] = o
			}
			q.Options = opts
		}
		out[i] = q
	}
	return out
}

// ValidateStructure checks that a question's shape matches its type.
func ValidateStructure(q Question) error {
	if utf8.RuneCountInString(strings.TrimSpace(q.Text)) < MinQuestionTextLen {
		return shapeError("text must be at least %d characters", MinQuestionTextLen)
	}
	switch q.Type {
	case TypeMultipleChoice:
		if n := len(q.Options); n < MinOptions || n > MaxOptions {
			return shapeError("multiple-choice needs %d-%d options, got %d", MinOptions, MaxOptions, n)
		}
		correct := 0
		seen := make(map[string]bool, len(q.Options))
		for j, o := range q.Options {
			if o.ID == "" {
				return shapeError("option at position %d has no id", j+1)
			}
			if seen[o.ID] {
				return shapeError("option id %s is used more than once", o.ID)
			}
			seen[o.ID] = true
			if strings.TrimSpace(o.Text) == "" {
				return shapeError("option %s has no text", o.ID)
			}
			if o.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return shapeError("multiple-choice needs exactly one correct option, got %d", correct)
		}
	case TypeFreeForm, TypeCodingChallenge:
		if len(q.Options) > 0 {
			return shapeError("%s questions cannot have options", q.Type)
		}
	default:
		return shapeError("unknown question type %q", q.Type)
	}
	return nil
}

// Normalize assigns canonical ids and validates every question. Invalid questions
// are reported individually and stay in the returned test.
func Normalize(t Test) (Test, []*QuestionError) {
	t.Questions = AssignCanonicalIDs(t.Questions)
	var errs []*QuestionError
	for i, q := range t.Questions {
		if err := ValidateStructure(q); err != nil {
			errs = append(errs, &QuestionError{Index: i, QuestionID: q.ID, Err: err})
		}
	}
	return t, errs
}

// DropInvalid removes questions that fail ValidateStructure and renumbers the rest.
// The reported errors carry the ids the questions had before removal.
func DropInvalid(questions []Question) ([]Question, []*QuestionError) {
	numbered := AssignCanonicalIDs(questions)
	kept := make([]Question, 0, len(numbered))
	var errs []*QuestionError
	for i, q := range numbered {
		if err := ValidateStructure(q); err != nil {
			errs = append(errs, &QuestionError{Index: i, QuestionID: q.ID, Err: err})
			continue
		}
		kept = append(kept, q)
	}
	return AssignCanonicalIDs(kept), errs
}

// ReconcileCount accepts whatever count the generator produced and returns a
// warning when it differs from the request.
func ReconcileCount(generated, requested int) *CountMismatch {
	if generated == requested {
		return nil
	}
	return &CountMismatch{Requested: requested, Generated: generated}
}
