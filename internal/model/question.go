package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	TestID        uint             `json:"test_id" gorm:"not null;index;uniqueIndex:idx_question_test_key"`
	Key           string           `json:"key" gorm:"not null;uniqueIndex:idx_question_test_key"` // canonical id, "q1"
	Position      int              `json:"position" gorm:"not null"`
	Type          string           `json:"type" gorm:"not null"` // "multiple-choice", "free-form", "coding-challenge"
	Text          string           `json:"text" gorm:"type:text;not null"`
	SkillCategory string           `json:"skill_category,omitempty"`
	Difficulty    string           `json:"difficulty,omitempty"`
	Explanation   string           `json:"explanation,omitempty" gorm:"type:text"`
	Language      string           `json:"language,omitempty"`
	StarterCode   string           `json:"starter_code,omitempty" gorm:"type:text"`
	Solution      string           `json:"solution,omitempty" gorm:"type:text"`
	Options       []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

type QuestionOption struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Key        string `json:"key" gorm:"not null"` // canonical id, "q1o2"
	Position   int    `json:"position" gorm:"not null"`
	Text       string `json:"text" gorm:"type:text;not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null;default:false"`
}
