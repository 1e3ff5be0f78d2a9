package service

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/lshigami/SkillCheck/internal/dto"
)

func TestRenderAttemptReport(t *testing.T) {
	correct := true
	attempt := &dto.TestAttemptDetailDTO{
		ID:                  7,
		TestID:              "3",
		TestTitle:           "Go Basics: Résumé screen",
		CandidateName:       "Ada",
		CandidateEmail:      "ada@example.com",
		SubmittedAt:         time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Score:               1,
		TotalMultipleChoice: 1,
		Percentage:          100,
		HasNonGradable:      true,
		Status:              "reviewed",
		Answers: []dto.AnswerResponseDTO{
			{QuestionID: "q1", QuestionType: "multiple-choice", QuestionText: "Which keyword starts a goroutine?", SelectedOptionID: "q1o2", CorrectOptionID: "q1o2", IsCorrect: &correct, Feedback: "Correct!"},
			{QuestionID: "q2", QuestionType: "free-form", QuestionText: "Explain a goroutine leak.", UserAnswer: freeFormAnswer, Feedback: "Answer recorded.", AIReview: json.RawMessage(problemSolvingReply)},
			{QuestionID: "q3", QuestionType: "coding-challenge", QuestionText: "Reverse a slice.", UserAnswer: codingAnswer, AIReviewError: "timeout"},
		},
	}

	out, err := NewReportService().RenderAttemptReport(attempt)
	if err != nil {
		t.Fatalf("RenderAttemptReport: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", out[:min(len(out), 16)])
	}

	if _, err := NewReportService().RenderAttemptReport(nil); err == nil {
		t.Errorf("nil attempt accepted")
	}
}
