package models

import (
	"time"

	"gorm.io/gorm"
)

type ActivityStatus string

const (
	ActivityPending ActivityStatus = "Pending"
	ActivityDone    ActivityStatus = "Done"
	ActivityOverdue ActivityStatus = "Overdue"
)

type Activity struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Title string `json:"title" gorm:"not null;size:200;index" validate:"required,max=200"`
	Type  string `json:"type" gorm:"not null;size:50" validate:"required,max=50"`

	// Course is a free-text label, deliberately not a foreign key to the
	// courses table; existing data assumes the two are independent.
	Course string `json:"course" gorm:"not null;size:200" validate:"required,max=200"`

	DueDate *time.Time `json:"due_date" gorm:"index"`

	// Status is stamped by the service at write time, never re-derived on read.
	Status ActivityStatus `json:"status" gorm:"not null;size:20;index"`

	OwnerID string `json:"owner_id" gorm:"not null;index;size:255"`
	Owner   User   `json:"-" gorm:"foreignKey:OwnerID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Activity) TableName() string {
	return "activities"
}
