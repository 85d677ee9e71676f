package services

import (
	"context"
	"time"

	"github.com/student-tracker/tracker-service/internal/events"
	"github.com/student-tracker/tracker-service/internal/models"
	"github.com/student-tracker/tracker-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Use business validator types
type CreateAssignmentRequest = validator.AssignmentCreateRequest
type UpdateAssignmentRequest = validator.AssignmentUpdateRequest
type CreateActivityRequest = validator.ActivityCreateRequest
type UpdateActivityRequest = validator.ActivityUpdateRequest
type CreateCourseRequest = validator.CourseCreateRequest
type UpdateCourseRequest = validator.CourseUpdateRequest
type RegisterRequest = validator.RegisterRequest
type UpdateProfileRequest = validator.UpdateProfileRequest

type ValidationErrors = validator.ValidationErrors

// ===== SERVICE INTERFACES =====

// Every operation takes the resolved caller identity and fails with
// ErrUnauthorized before touching the store when it is absent.

type AssignmentService interface {
	List(ctx context.Context, userID string) ([]*models.Assignment, error)
	Create(ctx context.Context, req *CreateAssignmentRequest, userID string) (*models.Assignment, error)
	Update(ctx context.Context, id uint, req *UpdateAssignmentRequest, userID string) (*models.Assignment, error)
	Delete(ctx context.Context, id uint, userID string) error
}

type ActivityService interface {
	List(ctx context.Context, userID string) ([]*models.Activity, error)
	Create(ctx context.Context, req *CreateActivityRequest, userID string) (*models.Activity, error)
	Update(ctx context.Context, id uint, req *UpdateActivityRequest, userID string) (*models.Activity, error)
	Delete(ctx context.Context, id uint, userID string) error
}

type CourseService interface {
	List(ctx context.Context, userID string) ([]*models.Course, error)
	Create(ctx context.Context, req *CreateCourseRequest, userID string) (*models.Course, error)
	Update(ctx context.Context, id uint, req *UpdateCourseRequest, userID string) (*models.Course, error)
	Delete(ctx context.Context, id uint, userID string) error
}

type UserService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error)
}

// DueSoonNotification is one selected record, ready for delivery.
type DueSoonNotification struct {
	Kind     events.RecordKind `json:"kind"`
	RecordID uint              `json:"record_id"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	DueDate  time.Time         `json:"due_date"`
}

// WatcherService selects Pending records whose due date falls inside a
// lookahead window and emits one notification event per hit.
type WatcherService interface {
	SelectDueSoon(ctx context.Context, userID string, now time.Time, window time.Duration) ([]DueSoonNotification, error)
	Scan(ctx context.Context, userID string, now time.Time, window time.Duration) (int, error)
}
