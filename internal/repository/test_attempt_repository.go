package repository

import (
	"github.com/lshigami/SkillCheck/internal/model"
	"gorm.io/gorm"
)

type TestAttemptRepository interface {
	Create(attempt *model.TestAttempt) error
	// UpdateStatus only touches the status column so answers are left alone.
	UpdateStatus(id uint, status string) error
	FindByIDWithDetails(id uint) (*model.TestAttempt, error)
	FindAllByTest(testID uint) ([]model.TestAttempt, error)
}

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

// Create stores the attempt and its answers; GORM inserts the Answers association.
func (r *testAttemptRepository) Create(attempt *model.TestAttempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(attempt).Error
	})
}

func (r *testAttemptRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.TestAttempt{}).Where("id = ?", id).Update("status", status).Error
}

func (r *testAttemptRepository) FindByIDWithDetails(id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.
		Preload("Test").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.position ASC")
		}).
		First(&attempt, id).Error
	return &attempt, err
}

func (r *testAttemptRepository) FindAllByTest(testID uint) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.Where("test_id = ?", testID).Order("submitted_at DESC").Find(&attempts).Error
	return attempts, err
}
