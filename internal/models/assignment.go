package models

import (
	"time"

	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "Pending"
	AssignmentSubmitted AssignmentStatus = "Submitted"
	AssignmentOverdue   AssignmentStatus = "Overdue"
)

type Assignment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null;size:200;index" validate:"required,max=200"`
	Instructor string    `json:"instructor" gorm:"not null;size:100" validate:"required,max=100"`
	DueDate    time.Time `json:"due_date" gorm:"not null;index"`
	TotalMarks float64   `json:"total_marks" gorm:"not null" validate:"gt=0"`

	// ObtainedMarks stays nil until the assignment is graded.
	ObtainedMarks *float64 `json:"obtained_marks"`

	// Status is stamped by the service at write time, never re-derived on read.
	Status AssignmentStatus `json:"status" gorm:"not null;size:20;index"`

	OwnerID string `json:"owner_id" gorm:"not null;index;size:255"`
	Owner   User   `json:"-" gorm:"foreignKey:OwnerID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Assignment) TableName() string {
	return "assignments"
}
