package assessment

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func htmlTest() Test {
	return Test{ID: "t1", Title: "HTML", Questions: []Question{{
		ID:   "q1",
		Type: TypeMultipleChoice,
		Text: "What does HTML stand for?",
		Options: []Option{
			{ID: "q1o1", Text: "HyperText Markup Language", IsCorrect: true},
			{ID: "q1o2", Text: "Hyperlinks and Text Markup Language"},
		},
	}}}
}

func freeFormTest() Test {
	return Test{ID: "t2", Questions: []Question{{
		ID:   "q3",
		Type: TypeFreeForm,
		Text: "Describe the difference between let, const and var.",
	}}}
}

func TestGradeCorrectAnswer(t *testing.T) {
	res := Grade(htmlTest(), Submission{"q1": "q1o1"})

	if res.Score != 1 || res.TotalMultipleChoice != 1 {
		t.Fatalf("score %d/%d, want 1/1", res.Score, res.TotalMultipleChoice)
	}
	d := res.Details[0]
	if d.QuestionID != "q1" || d.IsCorrect == nil || !*d.IsCorrect {
		t.Fatalf("detail = %+v, want q1 correct", d)
	}
	if d.Feedback != FeedbackCorrect {
		t.Errorf("feedback = %q", d.Feedback)
	}
	if res.Percentage() != 100 {
		t.Errorf("percentage = %d, want 100", res.Percentage())
	}
}

func TestGradeIncorrectAnswer(t *testing.T) {
	res := Grade(htmlTest(), Submission{"q1": "q1o2"})

	if res.Score != 0 || res.TotalMultipleChoice != 1 {
		t.Fatalf("score %d/%d, want 0/1", res.Score, res.TotalMultipleChoice)
	}
	d := res.Details[0]
	if d.IsCorrect == nil || *d.IsCorrect {
		t.Fatalf("IsCorrect = %v, want false", d.IsCorrect)
	}
	if d.CorrectOptionID != "q1o1" || d.SelectedOptionID != "q1o2" {
		t.Errorf("detail = %+v", d)
	}
	if !strings.Contains(d.Feedback, "HyperText Markup Language") {
		t.Errorf("feedback %q does not name the correct answer", d.Feedback)
	}
}

func TestGradeFreeForm(t *testing.T) {
	answer := "var is function scoped..."
	res := Grade(freeFormTest(), Submission{"q3": answer})

	d := res.Details[0]
	if d.QuestionID != "q3" || d.IsCorrect != nil {
		t.Fatalf("detail = %+v, want q3 with no verdict", d)
	}
	if d.UserAnswer != answer {
		t.Errorf("UserAnswer = %q, want verbatim %q", d.UserAnswer, answer)
	}
	if !res.HasNonGradable {
		t.Error("HasNonGradable = false")
	}
	if res.TotalMultipleChoice != 0 || res.Percentage() != 0 {
		t.Errorf("total %d percentage %d, want 0 and 0", res.TotalMultipleChoice, res.Percentage())
	}
}

func TestGradeMissingAnswer(t *testing.T) {
	res := Grade(freeFormTest(), Submission{})

	if len(res.Details) != 1 {
		t.Fatalf("got %d details, want 1", len(res.Details))
	}
	d := res.Details[0]
	if d.IsCorrect != nil || d.UserAnswer != "" || d.Error != "" {
		t.Errorf("detail = %+v, want empty ungraded detail", d)
	}

	res = Grade(htmlTest(), nil)
	if res.Details[0].IsCorrect == nil || *res.Details[0].IsCorrect {
		t.Errorf("unanswered multiple-choice should be incorrect, got %+v", res.Details[0])
	}
}

func TestGradeCodingChallenge(t *testing.T) {
	test := Test{Questions: []Question{
		{ID: "q1", Type: TypeCodingChallenge, Text: "Reverse a string in Go.", Language: "go", Solution: "func reverse(s string) string {}"},
		{ID: "q2", Type: TypeCodingChallenge, Text: "Sum a slice of integers.", Language: "go"},
	}}
	code := "func reverse(s string) string { return s }"
	res := Grade(test, Submission{"q1": code})

	if res.Details[0].UserAnswer != code || res.Details[0].IsCorrect != nil {
		t.Errorf("detail = %+v", res.Details[0])
	}
	if res.Details[0].Feedback != FeedbackCodingWithSample {
		t.Errorf("feedback = %q", res.Details[0].Feedback)
	}
	if res.Details[1].Feedback != FeedbackCodingNoSample {
		t.Errorf("feedback = %q", res.Details[1].Feedback)
	}
}

func TestGradeMalformedQuestionDoesNotAbort(t *testing.T) {
	test := Test{Questions: []Question{
		{ID: "q1", Type: TypeMultipleChoice, Text: "Broken question without key", Options: []Option{{ID: "q1o1", Text: "a"}, {ID: "q1o2", Text: "b"}}},
		htmlTest().Questions[0],
	}}
	test.Questions[1].ID = "q2"
	test.Questions[1].Options[0].ID = "q2o1"

	res := Grade(test, Submission{"q1": "q1o1", "q2": "q2o1"})

	if len(res.Details) != 2 {
		t.Fatalf("got %d details, want 2", len(res.Details))
	}
	bad := res.Details[0]
	if bad.Error == "" || bad.IsCorrect != nil {
		t.Errorf("malformed detail = %+v", bad)
	}
	if !strings.Contains(bad.Error, ErrMalformedTest.Error()) {
		t.Errorf("error %q does not mention %v", bad.Error, ErrMalformedTest)
	}
	if res.Score != 1 || res.TotalMultipleChoice != 2 {
		t.Errorf("score %d/%d, want 1/2", res.Score, res.TotalMultipleChoice)
	}
}

func TestGradeMultipleChoiceKeys(t *testing.T) {
	question := func(opts ...Option) Test {
		return Test{Questions: []Question{{ID: "q1", Type: TypeMultipleChoice, Text: "Which keyword declares a constant?", Options: opts}}}
	}
	tests := []struct {
		name      string
		test      Test
		sub       Submission
		wantError bool
		wantScore int
	}{
		{
			name:      "unanswered with unnamed options",
			test:      question(Option{Text: "const", IsCorrect: true}, Option{Text: "var"}),
			sub:       Submission{},
			wantError: true,
		},
		{
			name:      "empty selection against unnamed key",
			test:      question(Option{Text: "const", IsCorrect: true}, Option{ID: "q1o2", Text: "var"}),
			sub:       Submission{"q1": ""},
			wantError: true,
		},
		{
			name:      "key id shared with another option",
			test:      question(Option{ID: "q1o1", Text: "const", IsCorrect: true}, Option{ID: "q1o1", Text: "var"}),
			sub:       Submission{"q1": "q1o1"},
			wantError: true,
		},
		{
			name: "empty selection never matches",
			test: question(Option{ID: "q1o1", Text: "const", IsCorrect: true}, Option{ID: "q1o2", Text: "var"}),
			sub:  Submission{"q1": ""},
		},
		{
			name:      "valid key",
			test:      question(Option{ID: "q1o1", Text: "const", IsCorrect: true}, Option{ID: "q1o2", Text: "var"}),
			sub:       Submission{"q1": "q1o1"},
			wantScore: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Grade(tt.test, tt.sub)
			d := res.Details[0]
			if res.Score != tt.wantScore || res.TotalMultipleChoice != 1 {
				t.Errorf("score %d/%d, want %d/1", res.Score, res.TotalMultipleChoice, tt.wantScore)
			}
			if tt.wantError {
				if d.Error == "" || d.IsCorrect != nil || d.Feedback != FeedbackMalformed {
					t.Errorf("detail = %+v, want malformed", d)
				}
				if !strings.Contains(d.Error, ErrMalformedTest.Error()) {
					t.Errorf("error %q does not mention %v", d.Error, ErrMalformedTest)
				}
				return
			}
			if d.Error != "" || d.IsCorrect == nil || *d.IsCorrect != (tt.wantScore == 1) {
				t.Errorf("detail = %+v", d)
			}
		})
	}
}

func TestGradeProperties(t *testing.T) {
	test := SampleTest()
	subs := []Submission{
		nil,
		{},
		{"q1": "q1o1", "q2": "q2o3", "q3": "let is block scoped", "q4": "q4o2"},
		{"q1": "q1o3", "q2": "nope", "unknown": "ignored"},
	}
	for _, sub := range subs {
		first := Grade(test, sub)
		second := Grade(test, sub)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Grade is not deterministic for %v", sub)
		}
		if len(first.Details) != len(test.Questions) {
			t.Errorf("got %d details, want %d", len(first.Details), len(test.Questions))
		}
		if first.Score < 0 || first.Score > first.TotalMultipleChoice {
			t.Errorf("score %d out of [0,%d]", first.Score, first.TotalMultipleChoice)
		}
		for i, d := range first.Details {
			if d.QuestionID != test.Questions[i].ID {
				t.Errorf("detail %d is %s, want %s", i, d.QuestionID, test.Questions[i].ID)
			}
		}
	}
}

func TestPercentageRounds(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 3, 100},
	}
	for _, tt := range tests {
		r := Result{Score: tt.score, TotalMultipleChoice: tt.total}
		if got := r.Percentage(); got != tt.want {
			t.Errorf("Percentage(%d/%d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestSampleTestIsValid(t *testing.T) {
	_, errs := Normalize(SampleTest())
	for _, err := range errs {
		if errors.Is(err, ErrInvalidQuestionShape) {
			t.Errorf("sample test question invalid: %v", err)
		}
	}
}
