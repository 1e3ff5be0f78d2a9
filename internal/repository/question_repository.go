package repository

import (
	"github.com/lshigami/SkillCheck/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// FindByTestID returns the questions of a test in position order, options preloaded.
	FindByTestID(testID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByTestID(testID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.position ASC")
		}).
		Where("test_id = ?", testID).
		Order("position ASC").
		Find(&questions).Error
	return questions, err
}
