package repository

import (
	"github.com/tdnghia/jobportal/internal/model"
	"gorm.io/gorm"
)

// TestWithQuestionCount carries a test row plus its live question count for
// list views that do not need the questions themselves.
type TestWithQuestionCount struct {
	model.Test
	QuestionCount int
}

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindByIDWithQuestions(id uint) (*model.Test, error)
	FindAllByCreator(createdBy string) ([]TestWithQuestionCount, error)
	FindAvailableForUser(userID string) ([]TestWithQuestionCount, error)
	Update(test *model.Test) error
	Delete(id uint) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// Create with associations also inserts the embedded questions.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.First(&test, id).Error
	return &test, err
}

func (r *testRepository) FindByIDWithQuestions(id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).First(&test, id).Error
	return &test, err
}

const questionCountSelect = "tests.*, (SELECT COUNT(*) FROM questions WHERE questions.test_id = tests.id AND questions.deleted_at IS NULL) as question_count"

func (r *testRepository) FindAllByCreator(createdBy string) ([]TestWithQuestionCount, error) {
	var results []TestWithQuestionCount
	err := r.db.Model(&model.Test{}).
		Select(questionCountSelect).
		Where("tests.created_by = ? AND tests.deleted_at IS NULL", createdBy).
		Order("tests.created_at DESC").
		Scan(&results).Error
	return results, err
}

// FindAvailableForUser returns active tests the user has no result for,
// newest first. An empty slice is a valid answer, not an error.
func (r *testRepository) FindAvailableForUser(userID string) ([]TestWithQuestionCount, error) {
	var results []TestWithQuestionCount
	attempted := r.db.Model(&model.TestResult{}).
		Select("test_id").
		Where("user_id = ?", userID)
	err := r.db.Model(&model.Test{}).
		Select(questionCountSelect).
		Where("tests.is_active = ? AND tests.deleted_at IS NULL", true).
		Where("tests.id NOT IN (?)", attempted).
		Order("tests.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *testRepository) Update(test *model.Test) error {
	return r.db.Save(test).Error
}

func (r *testRepository) Delete(id uint) error {
	return r.db.Delete(&model.Test{}, id).Error
}
