package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/student-tracker/tracker-service/internal/models"
)

// Every query and mutation below is owner-scoped: the ownerID parameter is
// part of the lookup, never trusted from the payload. A record owned by a
// different user is indistinguishable from a missing one
// (gorm.ErrRecordNotFound either way).
//
// The tx parameter carries an open transaction; nil falls back to the
// repository's own connection.

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, user *models.User) error
}

type CourseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, course *models.Course) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint, ownerID string) (*models.Course, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Course, error)
	Update(ctx context.Context, tx *gorm.DB, course *models.Course) error
	Delete(ctx context.Context, tx *gorm.DB, id uint, ownerID string) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, assignment *models.Assignment) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint, ownerID string) (*models.Assignment, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Assignment, error)
	ListPendingByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Assignment, error)
	Update(ctx context.Context, tx *gorm.DB, assignment *models.Assignment) error
	Delete(ctx context.Context, tx *gorm.DB, id uint, ownerID string) error
}

type ActivityRepository interface {
	Create(ctx context.Context, tx *gorm.DB, activity *models.Activity) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint, ownerID string) (*models.Activity, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Activity, error)
	ListPendingByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Activity, error)
	Update(ctx context.Context, tx *gorm.DB, activity *models.Activity) error
	Delete(ctx context.Context, tx *gorm.DB, id uint, ownerID string) error
}
