package assessment

import "fmt"

const (
	FeedbackCorrect          = "Correct!"
	FeedbackIncorrect        = "Incorrect. Correct answer: %s"
	FeedbackFreeForm         = "Answer recorded. Requires manual review or AI analysis."
	FeedbackCodingWithSample = "Code submitted. Compare it against the sample solution or request an AI code review."
	FeedbackCodingNoSample   = "Code submitted. No sample solution is available; request an AI code review."
	FeedbackMalformed        = "This question could not be graded."
)

// Grade scores a submission against a test. It produces exactly one detail per
// question, in test order, and never fails: a malformed question is reported on
// its own detail. Missing answers count as empty.
func Grade(t Test, sub Submission) Result {
	res := Result{Details: make([]ResultDetail, 0, len(t.Questions))}
	for _, q := range t.Questions {
		answer := sub[q.ID]
		var d ResultDetail
		switch q.Type {
		case TypeMultipleChoice:
			res.TotalMultipleChoice++
			d = gradeMultipleChoice(q, answer)
			if d.IsCorrect != nil && *d.IsCorrect {
				res.Score++
			}
		case TypeFreeForm:
			res.HasNonGradable = true
			d = ResultDetail{UserAnswer: answer, Feedback: FeedbackFreeForm}
		case TypeCodingChallenge:
			res.HasNonGradable = true
			d = ResultDetail{UserAnswer: answer, Feedback: FeedbackCodingNoSample}
			if q.Solution != "" {
				d.Feedback = FeedbackCodingWithSample
			}
		default:
			d = malformed(fmt.Errorf("%w: unknown question type %q", ErrMalformedTest, q.Type))
			d.UserAnswer = answer
		}
		d.QuestionID = q.ID
		d.Type = q.Type
		res.Details = append(res.Details, d)
	}
	return res
}

func gradeMultipleChoice(q Question, selected string) ResultDetail {
	var correct *Option
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			correct = &q.Options[i]
			break
		}
	}
	var keyErr error
	switch {
	case correct == nil:
		keyErr = fmt.Errorf("%w: no correct option", ErrMalformedTest)
	case correct.ID == "":
		keyErr = fmt.Errorf("%w: correct option has no id", ErrMalformedTest)
	case countOptionID(q.Options, correct.ID) > 1:
		keyErr = fmt.Errorf("%w: option id %s is not unique", ErrMalformedTest, correct.ID)
	}
	if keyErr != nil {
		d := malformed(keyErr)
		d.SelectedOptionID = selected
		return d
	}

	// An empty selection is an absent answer and never matches the key.
	ok := selected != "" && selected == correct.ID
	d := ResultDetail{
		IsCorrect:        &ok,
		SelectedOptionID: selected,
		CorrectOptionID:  correct.ID,
		Feedback:         FeedbackCorrect,
	}
	if !ok {
		d.Feedback = fmt.Sprintf(FeedbackIncorrect, correct.Text)
	}
	return d
}

func countOptionID(opts []Option, id string) int {
	n := 0
	for _, o := range opts {
		if o.ID == id {
			n++
		}
	}
	return n
}

func malformed(err error) ResultDetail {
	return ResultDetail{Feedback: FeedbackMalformed, Error: err.Error()}
}
