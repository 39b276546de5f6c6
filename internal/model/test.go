package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text;not null"`
	Duration     int            `json:"duration" gorm:"not null"` // minutes; caps the client-side session timer
	TotalMarks   int            `json:"total_marks" gorm:"not null"`
	PassingMarks int            `json:"passing_marks" gorm:"not null"`
	JobID        string         `json:"job_id" gorm:"not null;index"` // externally-owned Job reference
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedBy    string         `json:"created_by" gorm:"not null;index"` // auth subject of the authoring recruiter
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
