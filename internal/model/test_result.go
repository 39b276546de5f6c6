package model

import "time"

// TestResult is one candidate's single, immutable scored attempt. The
// composite unique index backs up the explicit pre-insert check so that a
// concurrent double submission can persist at most one row.
type TestResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	TestID         uint      `json:"test_id" gorm:"not null;uniqueIndex:idx_test_results_test_user"`
	Test           Test      `json:"test,omitempty" gorm:"foreignKey:TestID"`
	UserID         string    `json:"user_id" gorm:"not null;uniqueIndex:idx_test_results_test_user"`
	UserName       string    `json:"user_name"`  // claim snapshot taken at submit
	UserEmail      string    `json:"user_email"` // claim snapshot taken at submit
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	TotalMarks     int       `json:"total_marks" gorm:"not null"`
	Passed         bool      `json:"passed"`
	Answers        []int     `json:"answers" gorm:"serializer:json;not null"`
	SubmittedAt    time.Time `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
