package repository

import (
	"github.com/lshigami/SkillCheck/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	// UpdateReview stores the outcome of a qualitative review. Grading columns are never written here.
	UpdateReview(answerID uint, review, reviewErr string) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) UpdateReview(answerID uint, review, reviewErr string) error {
	return r.db.Model(&model.Answer{}).
		Where("id = ?", answerID).
		Updates(map[string]any{"ai_review": review, "ai_review_error": reviewErr}).Error
}
