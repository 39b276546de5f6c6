package repository

import (
	"github.com/tdnghia/jobportal/internal/model"
	"gorm.io/gorm"
)

type TestResultRepository interface {
	Create(result *model.TestResult) error
	FindByTestAndUser(testID uint, userID string) (*model.TestResult, error)
	// FindAllByTest lists results for a test, newest submission first. A
	// non-nil userID narrows the listing to that submitter.
	FindAllByTest(testID uint, userID *string) ([]model.TestResult, error)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) Create(result *model.TestResult) error {
	return r.db.Create(result).Error
}

func (r *testResultRepository) FindByTestAndUser(testID uint, userID string) (*model.TestResult, error) {
	var result model.TestResult
	err := r.db.Where("test_id = ? AND user_id = ?", testID, userID).First(&result).Error
	return &result, err
}

func (r *testResultRepository) FindAllByTest(testID uint, userID *string) ([]model.TestResult, error) {
	var results []model.TestResult
	query := r.db.Where("test_id = ?", testID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("submitted_at DESC").Find(&results).Error
	return results, err
}
