package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/lshigami/SkillCheck/internal/assessment"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/model"
)

const (
	freeFormAnswer = "I would compare goroutine counts in pprof snapshots taken a few minutes apart."
	codingAnswer   = "func reverse(s []int) { for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 { s[i], s[j] = s[j], s[i] } }"
)

const (
	problemSolvingReply = `{"problem_solving_approach": "Methodical.", "efficiency_assessment": "Cheap to run.", "areas_for_improvement": "Mention alerting."}`
	codeQualityReply    = `{"functionality_assessment": "Correct.", "readability_score": 8, "maintainability_score": 7, "efficiency_assessment": "O(n).", "best_practices_adherence": "Idiomatic.", "security_vulnerabilities": [], "suggestions_for_improvement": ["Add a doc comment."], "overall_quality_summary": "Good."}`
)

type submissionFixture struct {
	db     *memDB
	llm    *fakeLLM
	svc    TestSubmissionService
	testID string
}

func newSubmissionFixture(t *testing.T, replies ...fakeReply) *submissionFixture {
	t.Helper()
	db := newMemDB()
	created, err := NewAdminTestService(fakeTestRepo{db}).CreateTest(goBasicsDTO())
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	llm := &fakeLLM{replies: replies}
	svc := NewTestSubmissionService(fakeTestRepo{db}, fakeQuestionRepo{db}, fakeAttemptRepo{db}, fakeAnswerRepo{db}, NewGenerativeService(llm))
	return &submissionFixture{db: db, llm: llm, svc: svc, testID: created.ID}
}

func (f *submissionFixture) submit(t *testing.T, answers map[string]string) *dto.TestAttemptDetailDTO {
	t.Helper()
	got, err := f.svc.SubmitTest(f.testID, dto.TestAttemptSubmitDTO{CandidateName: "Ada", CandidateEmail: "ada@example.com", Answers: answers})
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}
	return got
}

func TestSubmitTestGradesAndStores(t *testing.T) {
	f := newSubmissionFixture(t)

	got := f.submit(t, map[string]string{
		"q1": "q1o2",
		"q2": "q2o2",
		"q3": freeFormAnswer,
		"q4": codingAnswer,
		"q9": "ignored",
	})
	if got.Score != 1 || got.TotalMultipleChoice != 2 || got.Percentage != 50 || !got.HasNonGradable {
		t.Errorf("score=%d total=%d pct=%d nonGradable=%v", got.Score, got.TotalMultipleChoice, got.Percentage, got.HasNonGradable)
	}
	if got.Status != model.AttemptStatusGraded || got.TestID != f.testID || got.TestTitle != "Go Basics" {
		t.Errorf("status=%q testID=%q title=%q", got.Status, got.TestID, got.TestTitle)
	}
	if len(got.Answers) != 4 {
		t.Fatalf("got %d answers, want one per question", len(got.Answers))
	}
	if a := got.Answers[0]; a.IsCorrect == nil || !*a.IsCorrect || a.Feedback != assessment.FeedbackCorrect {
		t.Errorf("q1 = %+v", a)
	}
	if a := got.Answers[1]; a.IsCorrect == nil || *a.IsCorrect || a.CorrectOptionID != "q2o1" {
		t.Errorf("q2 = %+v", a)
	}
	if a := got.Answers[3]; a.IsCorrect != nil || a.Feedback != assessment.FeedbackCodingWithSample || a.QuestionText == "" {
		t.Errorf("q4 = %+v", a)
	}

	stored, ok := f.db.attempts[got.ID]
	if !ok {
		t.Fatalf("attempt %d not stored", got.ID)
	}
	if stored.Score != 1 || len(stored.Answers) != 4 || stored.CandidateEmail != "ada@example.com" {
		t.Errorf("stored attempt = %+v", stored)
	}
	if f.llm.calls() != 0 {
		t.Errorf("grading must not call the generative model")
	}
}

func TestSubmitTestMissingAnswersAreIncorrect(t *testing.T) {
	f := newSubmissionFixture(t)

	got := f.submit(t, map[string]string{})
	if got.Score != 0 || got.TotalMultipleChoice != 2 || got.Percentage != 0 {
		t.Errorf("score=%d total=%d pct=%d", got.Score, got.TotalMultipleChoice, got.Percentage)
	}
	if a := got.Answers[0]; a.IsCorrect == nil || *a.IsCorrect {
		t.Errorf("missing answer should be graded incorrect: %+v", a)
	}
}

func TestSubmitSampleTestIsNotStored(t *testing.T) {
	f := newSubmissionFixture(t)

	got, err := f.svc.SubmitTest(assessment.SampleTestID, dto.TestAttemptSubmitDTO{Answers: map[string]string{"q1": "q1o1", "q2": "q2o1"}})
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}
	if got.ID != 0 || got.TestID != assessment.SampleTestID {
		t.Errorf("id=%d testID=%q", got.ID, got.TestID)
	}
	if got.Score != 1 || got.TotalMultipleChoice != 3 || got.Percentage != 33 {
		t.Errorf("score=%d total=%d pct=%d", got.Score, got.TotalMultipleChoice, got.Percentage)
	}
	if len(f.db.attempts) != 0 {
		t.Errorf("sample attempt was stored")
	}

	list, err := f.svc.GetAttemptsForTest(assessment.SampleTestID)
	if err != nil || len(list) != 0 {
		t.Errorf("sample attempts = %v, %v", list, err)
	}
}

func TestSubmitTestUnknownTest(t *testing.T) {
	f := newSubmissionFixture(t)
	for _, id := range []string{"404", "not-a-number"} {
		if _, err := f.svc.SubmitTest(id, dto.TestAttemptSubmitDTO{Answers: map[string]string{}}); !errors.Is(err, ErrTestNotFound) {
			t.Errorf("SubmitTest(%q) err = %v, want ErrTestNotFound", id, err)
		}
	}
	if _, err := f.svc.GetTestAttemptDetails("404"); !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("GetTestAttemptDetails err = %v, want ErrAttemptNotFound", err)
	}
	if _, err := f.svc.ReviewAttempt(context.Background(), "404"); !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("ReviewAttempt err = %v, want ErrAttemptNotFound", err)
	}
}

func TestGetAttemptsForTest(t *testing.T) {
	f := newSubmissionFixture(t)
	first := f.submit(t, map[string]string{"q1": "q1o2"})
	f.submit(t, map[string]string{"q1": "q1o2", "q2": "q2o1"})

	list, err := f.svc.GetAttemptsForTest(f.testID)
	if err != nil {
		t.Fatalf("GetAttemptsForTest: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d attempts, want 2", len(list))
	}
	if list[0].ID != first.ID || list[0].Score != 1 || list[1].Score != 2 || list[1].Percentage != 100 {
		t.Errorf("summaries = %+v", list)
	}
	if strconv.FormatUint(uint64(list[0].TestID), 10) != f.testID {
		t.Errorf("test id = %d, want %s", list[0].TestID, f.testID)
	}

	detail, err := f.svc.GetTestAttemptDetails(strconv.FormatUint(uint64(first.ID), 10))
	if err != nil {
		t.Fatalf("GetTestAttemptDetails: %v", err)
	}
	if detail.Score != 1 || len(detail.Answers) != 4 || detail.Answers[2].QuestionText == "" {
		t.Errorf("detail = %+v", detail)
	}
}

func TestReviewAttemptStoresAnalyses(t *testing.T) {
	f := newSubmissionFixture(t,
		fakeReply{contains: markerCodeQuality, body: codeQualityReply},
		fakeReply{contains: markerProblemSolving, body: problemSolvingReply},
	)
	submitted := f.submit(t, map[string]string{"q1": "q1o2", "q3": freeFormAnswer, "q4": codingAnswer})

	got, err := f.svc.ReviewAttempt(context.Background(), strconv.FormatUint(uint64(submitted.ID), 10))
	if err != nil {
		t.Fatalf("ReviewAttempt: %v", err)
	}
	if got.Status != model.AttemptStatusReviewed {
		t.Errorf("status = %q, want reviewed", got.Status)
	}
	if got.Score != submitted.Score || got.Percentage != submitted.Percentage {
		t.Errorf("review changed the grade: %d/%d -> %d/%d", submitted.Score, submitted.Percentage, got.Score, got.Percentage)
	}
	if f.llm.calls() != 2 {
		t.Errorf("provider calls = %d, want 2", f.llm.calls())
	}
	if got.Answers[0].AIReview != nil || got.Answers[1].AIReview != nil {
		t.Errorf("multiple-choice answers must not be reviewed")
	}

	var ps dto.ProblemSolvingAnalysis
	if err := json.Unmarshal(got.Answers[2].AIReview, &ps); err != nil || ps.ProblemSolvingApproach != "Methodical." {
		t.Errorf("free-form review = %s (%v)", got.Answers[2].AIReview, err)
	}
	var cq dto.CodeQualityAnalysis
	if err := json.Unmarshal(got.Answers[3].AIReview, &cq); err != nil || cq.ReadabilityScore != 8 {
		t.Errorf("coding review = %s (%v)", got.Answers[3].AIReview, err)
	}

	stored := f.db.attempts[submitted.ID]
	if stored.Status != model.AttemptStatusReviewed || stored.Answers[3].AIReview == "" {
		t.Errorf("review not stored: status=%q", stored.Status)
	}
}

func TestReviewAttemptRecordsFailuresPerAnswer(t *testing.T) {
	f := newSubmissionFixture(t,
		fakeReply{contains: markerCodeQuality, err: errors.New("upstream timeout")},
		fakeReply{contains: markerProblemSolving, body: problemSolvingReply},
	)
	submitted := f.submit(t, map[string]string{"q3": freeFormAnswer, "q4": codingAnswer})

	got, err := f.svc.ReviewAttempt(context.Background(), strconv.FormatUint(uint64(submitted.ID), 10))
	if err != nil {
		t.Fatalf("ReviewAttempt: %v", err)
	}
	if got.Status != model.AttemptStatusReviewedWithErrors {
		t.Errorf("status = %q, want reviewed_with_errors", got.Status)
	}
	if got.Answers[2].AIReview == nil || got.Answers[2].AIReviewError != "" {
		t.Errorf("free-form review should succeed: %+v", got.Answers[2])
	}
	if got.Answers[3].AIReview != nil || got.Answers[3].AIReviewError == "" {
		t.Errorf("coding review should carry the error: %+v", got.Answers[3])
	}
	if f.db.attempts[submitted.ID].Answers[3].AIReviewError == "" {
		t.Errorf("review error not stored")
	}
}

func TestReviewAttemptSkipsBlankAnswers(t *testing.T) {
	f := newSubmissionFixture(t, fakeReply{contains: markerProblemSolving, body: problemSolvingReply})
	submitted := f.submit(t, map[string]string{"q3": "   ", "q4": ""})

	got, err := f.svc.ReviewAttempt(context.Background(), strconv.FormatUint(uint64(submitted.ID), 10))
	if err != nil {
		t.Fatalf("ReviewAttempt: %v", err)
	}
	if f.llm.calls() != 0 {
		t.Errorf("blank answers were sent for review")
	}
	if got.Status != model.AttemptStatusReviewed {
		t.Errorf("status = %q", got.Status)
	}
}

func TestReviewAttemptKeepsGradingErrorsVisible(t *testing.T) {
	f := newSubmissionFixture(t, fakeReply{contains: markerProblemSolving, body: problemSolvingReply})
	broken := model.Test{
		Title:  "Broken key",
		Source: model.TestSourceAuthored,
		Questions: []model.Question{
			{Key: "q1", Position: 1, Type: "multiple-choice", Text: "Which keyword declares a constant?", Options: []model.QuestionOption{
				{Key: "q1o1", Position: 1, Text: "const"},
				{Key: "q1o2", Position: 2, Text: "var"},
			}},
			{Key: "q2", Position: 2, Type: "free-form", Text: "Explain when you would reach for a mutex."},
		},
	}
	if err := (fakeTestRepo{f.db}).Create(&broken); err != nil {
		t.Fatalf("seed test: %v", err)
	}
	f.testID = strconv.FormatUint(uint64(broken.ID), 10)

	submitted := f.submit(t, map[string]string{"q1": "q1o1", "q2": freeFormAnswer})
	if submitted.Status != model.AttemptStatusGradedWithErrors {
		t.Fatalf("status = %q, want graded_with_errors", submitted.Status)
	}

	got, err := f.svc.ReviewAttempt(context.Background(), strconv.FormatUint(uint64(submitted.ID), 10))
	if err != nil {
		t.Fatalf("ReviewAttempt: %v", err)
	}
	if got.Status != model.AttemptStatusReviewedWithErrors {
		t.Errorf("status = %q, want reviewed_with_errors", got.Status)
	}
	if got.Answers[0].GradingError == "" || got.Answers[1].AIReview == nil {
		t.Errorf("answers = %+v", got.Answers)
	}
	if got.Score != 0 || got.TotalMultipleChoice != 1 {
		t.Errorf("review changed the grade: %d/%d", got.Score, got.TotalMultipleChoice)
	}

	list, err := f.svc.GetAttemptsForTest(f.testID)
	if err != nil || len(list) != 1 || list[0].Status != model.AttemptStatusReviewedWithErrors {
		t.Errorf("attempt list = %+v, %v", list, err)
	}
}
