package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is embedded in a Test and never addressed on its own.
// Position is the canonical index used to match submitted answers; once any
// TestResult references this test, questions must only be appended, never
// reordered or removed, or historical results stop lining up.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	Prompt        string         `json:"question" gorm:"type:text;not null"`
	Options       []string       `json:"options" gorm:"serializer:json;not null"`
	CorrectOption int            `json:"correct_option" gorm:"not null"` // zero-based index into Options
	Marks         int            `json:"marks" gorm:"not null;default:1"`
	Position      int            `json:"position" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
