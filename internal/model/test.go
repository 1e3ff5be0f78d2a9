package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null"`
	JobTitle        string         `json:"job_title,omitempty"`
	JobRequirements string         `json:"job_requirements,omitempty" gorm:"type:text"`
	Seniority       string         `json:"seniority,omitempty"`
	Source          string         `json:"source" gorm:"not null;default:'authored'"` // "authored", "generated"
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

const (
	TestSourceAuthored  = "authored"
	TestSourceGenerated = "generated"
)
