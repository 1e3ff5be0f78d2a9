package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttemptStatusGraded             = "graded"
	AttemptStatusGradedWithErrors   = "graded_with_errors"
	AttemptStatusReviewing          = "reviewing"
	AttemptStatusReviewed           = "reviewed"
	AttemptStatusReviewedWithErrors = "reviewed_with_errors"
)

type TestAttempt struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	TestID              uint           `json:"test_id" gorm:"not null;index"`
	Test                Test           `json:"test,omitempty" gorm:"foreignKey:TestID"`
	CandidateName       string         `json:"candidate_name,omitempty"`
	CandidateEmail      string         `json:"candidate_email,omitempty" gorm:"index"`
	SubmittedAt         time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	Score               int            `json:"score"`
	TotalMultipleChoice int            `json:"total_multiple_choice"`
	Percentage          int            `json:"percentage"`
	HasNonGradable      bool           `json:"has_non_gradable"`
	Status              string         `json:"status" gorm:"default:'graded'"`
	Answers             []Answer       `json:"answers,omitempty" gorm:"foreignKey:TestAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}
