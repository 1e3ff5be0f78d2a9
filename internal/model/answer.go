package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is the persisted form of one grading detail.
type Answer struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	TestAttemptID    uint           `json:"test_attempt_id" gorm:"not null;index"`
	QuestionKey      string         `json:"question_key" gorm:"not null"`
	Position         int            `json:"position" gorm:"not null"`
	QuestionType     string         `json:"question_type" gorm:"not null"`
	SelectedOptionID string         `json:"selected_option_id,omitempty"`
	CorrectOptionID  string         `json:"correct_option_id,omitempty"`
	UserAnswer       string         `json:"user_answer" gorm:"type:text"`
	IsCorrect        *bool          `json:"is_correct,omitempty"`
	Feedback         string         `json:"feedback" gorm:"type:text"`
	GradingError     string         `json:"grading_error,omitempty" gorm:"type:text"`
	AIReview         string         `json:"ai_review,omitempty" gorm:"type:text"` // JSON analysis from the generative service
	AIReviewError    string         `json:"ai_review_error,omitempty" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
