package model

import (
	"testing"

	"github.com/lshigami/SkillCheck/internal/assessment"
)

func TestToAssessmentOrdersByPosition(t *testing.T) {
	m := Test{
		ID:    12,
		Title: "Ordering",
		Questions: []Question{
			{Key: "q2", Position: 2, Type: "free-form", Text: "Second question text"},
			{Key: "q1", Position: 1, Type: "multiple-choice", Text: "First question text", Options: []QuestionOption{
				{Key: "q1o2", Position: 2, Text: "b", IsCorrect: true},
				{Key: "q1o1", Position: 1, Text: "a"},
			}},
		},
	}

	got := m.ToAssessment()
	if got.ID != "12" {
		t.Errorf("id = %q", got.ID)
	}
	if got.Questions[0].ID != "q1" || got.Questions[1].ID != "q2" {
		t.Fatalf("questions out of order: %+v", got.Questions)
	}
	opts := got.Questions[0].Options
	if opts[0].ID != "q1o1" || opts[1].ID != "q1o2" || !opts[1].IsCorrect {
		t.Errorf("options out of order: %+v", opts)
	}
	if m.Questions[0].Key != "q2" {
		t.Errorf("ToAssessment reordered the model in place")
	}
}

func TestNewTestFromAssessmentRoundTrip(t *testing.T) {
	in, problems := assessment.Normalize(assessment.SampleTest())
	if len(problems) != 0 {
		t.Fatalf("sample test has problems: %v", problems)
	}
	m := NewTestFromAssessment(in, TestSourceAuthored)
	if m.Source != TestSourceAuthored || len(m.Questions) != len(in.Questions) {
		t.Fatalf("model = %+v", m)
	}
	if m.Questions[1].Position != 2 || m.Questions[1].Options[2].Key != "q2o3" || m.Questions[1].Options[2].Position != 3 {
		t.Errorf("question 2 = %+v", m.Questions[1])
	}

	back := m.ToAssessment()
	for i, q := range back.Questions {
		if q.ID != in.Questions[i].ID || q.Type != in.Questions[i].Type || len(q.Options) != len(in.Questions[i].Options) {
			t.Errorf("question %d changed: %+v", i, q)
		}
	}
}

func TestApplyResult(t *testing.T) {
	yes, no := true, false
	res := assessment.Result{
		Score:               1,
		TotalMultipleChoice: 2,
		HasNonGradable:      true,
		Details: []assessment.ResultDetail{
			{QuestionID: "q1", Type: assessment.TypeMultipleChoice, IsCorrect: &yes, SelectedOptionID: "q1o1", CorrectOptionID: "q1o1", Feedback: assessment.FeedbackCorrect},
			{QuestionID: "q2", Type: assessment.TypeMultipleChoice, IsCorrect: &no, SelectedOptionID: "q2o2", CorrectOptionID: "q2o1"},
			{QuestionID: "q3", Type: assessment.TypeFreeForm, UserAnswer: "text", Feedback: assessment.FeedbackFreeForm},
		},
	}

	var a TestAttempt
	a.ApplyResult(res)
	if a.Score != 1 || a.TotalMultipleChoice != 2 || a.Percentage != 50 || !a.HasNonGradable {
		t.Errorf("attempt = %+v", a)
	}
	if a.Status != AttemptStatusGraded {
		t.Errorf("status = %q", a.Status)
	}
	if len(a.Answers) != 3 || a.Answers[2].Position != 3 || a.Answers[2].QuestionKey != "q3" || a.Answers[2].IsCorrect != nil {
		t.Errorf("answers = %+v", a.Answers)
	}

	res.Details = append(res.Details, assessment.ResultDetail{QuestionID: "q4", Type: assessment.TypeMultipleChoice, Error: "malformed test: no correct option"})
	a.ApplyResult(res)
	if a.Status != AttemptStatusGradedWithErrors || a.Answers[3].GradingError == "" {
		t.Errorf("malformed question not flagged: status=%q", a.Status)
	}
}
