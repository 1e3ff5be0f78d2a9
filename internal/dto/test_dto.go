package dto

import (
	"encoding/json"
	"time"
)

type OptionResponseDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect *bool  `json:"is_correct,omitempty"`
}

// QuestionResponseDTO is used for displaying question details. Answer keys and
// solutions are only filled for the admin view.
type QuestionResponseDTO struct {
	ID            string              `json:"id"`
	Position      int                 `json:"position"`
	Type          string              `json:"type"`
	Text          string              `json:"text"`
	Options       []OptionResponseDTO `json:"options,omitempty"`
	SkillCategory string              `json:"skill_category,omitempty"`
	Difficulty    string              `json:"difficulty,omitempty"`
	Explanation   string              `json:"explanation,omitempty"`
	Language      string              `json:"language,omitempty"`
	StarterCode   string              `json:"starter_code,omitempty"`
	Solution      string              `json:"solution,omitempty"`
}

// TestResponseDTO is used for displaying full test details.
type TestResponseDTO struct {
	ID              string                `json:"id" copier:"-"`
	Title           string                `json:"title"`
	JobTitle        string                `json:"job_title,omitempty"`
	JobRequirements string                `json:"job_requirements,omitempty"`
	Seniority       string                `json:"seniority,omitempty"`
	Source          string                `json:"source,omitempty"`
	Questions       []QuestionResponseDTO `json:"questions,omitempty" copier:"-"`
	CreatedAt       time.Time             `json:"created_at"`
}

// TestSummaryDTO is used for listing tests available to candidates.
type TestSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	JobTitle      string    `json:"job_title,omitempty"`
	Seniority     string    `json:"seniority,omitempty"`
	Source        string    `json:"source"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// --- DTOs for Test Attempts (candidates submitting, recruiters reviewing) ---

// TestAttemptSubmitDTO is the request DTO for a candidate submitting all answers
// for a test. Answers maps a question id ("q1") to an option id or free text.
type TestAttemptSubmitDTO struct {
	CandidateName  string            `json:"candidate_name,omitempty"`
	CandidateEmail string            `json:"candidate_email,omitempty" binding:"omitempty,email"`
	Answers        map[string]string `json:"answers" binding:"required"`
}

// AnswerResponseDTO is one graded answer within a test attempt.
type AnswerResponseDTO struct {
	QuestionID       string          `json:"question_id"`
	QuestionType     string          `json:"question_type"`
	QuestionText     string          `json:"question_text,omitempty"`
	SelectedOptionID string          `json:"selected_option_id,omitempty"`
	CorrectOptionID  string          `json:"correct_option_id,omitempty"`
	UserAnswer       string          `json:"user_answer,omitempty"`
	IsCorrect        *bool           `json:"is_correct,omitempty"`
	Feedback         string          `json:"feedback"`
	GradingError     string          `json:"grading_error,omitempty"`
	AIReview         json.RawMessage `json:"ai_review,omitempty" swaggertype:"object"`
	AIReviewError    string          `json:"ai_review_error,omitempty"`
}

// TestAttemptDetailDTO is for displaying the full details of a specific test attempt.
type TestAttemptDetailDTO struct {
	ID                  uint                `json:"id"`
	TestID              string              `json:"test_id" copier:"-"`
	TestTitle           string              `json:"test_title,omitempty"`
	CandidateName       string              `json:"candidate_name,omitempty"`
	CandidateEmail      string              `json:"candidate_email,omitempty"`
	SubmittedAt         time.Time           `json:"submitted_at"`
	Score               int                 `json:"score"`
	TotalMultipleChoice int                 `json:"total_multiple_choice"`
	Percentage          int                 `json:"percentage"`
	HasNonGradable      bool                `json:"has_non_gradable"`
	Status              string              `json:"status"`
	Answers             []AnswerResponseDTO `json:"answers,omitempty" copier:"-"`
}

// TestAttemptSummaryDTO is for listing the attempts made on a test.
type TestAttemptSummaryDTO struct {
	ID                  uint      `json:"id"`
	TestID              uint      `json:"test_id"`
	CandidateName       string    `json:"candidate_name,omitempty"`
	CandidateEmail      string    `json:"candidate_email,omitempty"`
	SubmittedAt         time.Time `json:"submitted_at"`
	Score               int       `json:"score"`
	TotalMultipleChoice int       `json:"total_multiple_choice"`
	Percentage          int       `json:"percentage"`
	Status              string    `json:"status"`
}
