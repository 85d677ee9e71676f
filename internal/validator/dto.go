package validator

import (
	"time"

	"gorm.io/datatypes"
)

// AssignmentCreateRequest carries the fields required to create an assignment.
type AssignmentCreateRequest struct {
	Title         string    `json:"title" validate:"required,max=200"`
	Instructor    string    `json:"instructor" validate:"required,max=100"`
	DueDate       time.Time `json:"due_date" validate:"required"`
	TotalMarks    float64   `json:"total_marks" validate:"required,gt=0"`
	ObtainedMarks *float64  `json:"obtained_marks"`
}

// AssignmentUpdateRequest applies only the fields provided; absent (or null)
// fields keep their prior values.
type AssignmentUpdateRequest struct {
	Title         *string    `json:"title" validate:"omitempty,max=200"`
	Instructor    *string    `json:"instructor" validate:"omitempty,max=100"`
	DueDate       *time.Time `json:"due_date"`
	TotalMarks    *float64   `json:"total_marks" validate:"omitempty,gt=0"`
	ObtainedMarks *float64   `json:"obtained_marks"`
}

type ActivityCreateRequest struct {
	Title   string    `json:"title" validate:"required,max=200"`
	Type    string    `json:"type" validate:"required,max=50"`
	Course  string    `json:"course" validate:"required,max=200"`
	DueDate time.Time `json:"due_date" validate:"required"`
}

type ActivityUpdateRequest struct {
	Title   *string    `json:"title" validate:"omitempty,max=200"`
	Type    *string    `json:"type" validate:"omitempty,max=50"`
	Course  *string    `json:"course" validate:"omitempty,max=200"`
	DueDate *time.Time `json:"due_date"`
}

// CourseCreateRequest deliberately puts no bounds on Progress; existing data
// is permissive and stays that way.
type CourseCreateRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Instructor string `json:"instructor" validate:"required,max=100"`
	Progress   int    `json:"progress"`
}

type CourseUpdateRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=200"`
	Instructor *string `json:"instructor" validate:"omitempty,max=100"`
	Progress   *int    `json:"progress"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UpdateProfileRequest struct {
	Name        *string        `json:"name" validate:"omitempty,max=100"`
	Preferences datatypes.JSON `json:"preferences"`
}
