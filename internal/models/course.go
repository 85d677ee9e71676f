package models

import (
	"time"

	"gorm.io/gorm"
)

// Course has no derived status; progress is a plain percentage with no
// enforced bounds (matches existing data).
type Course struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Title      string `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Instructor string `json:"instructor" gorm:"not null;size:100" validate:"required,max=100"`
	Progress   int    `json:"progress"`

	OwnerID string `json:"owner_id" gorm:"not null;index;size:255"`
	Owner   User   `json:"-" gorm:"foreignKey:OwnerID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Course) TableName() string {
	return "courses"
}
