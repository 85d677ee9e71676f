package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/student-tracker/tracker-service/internal/cache"
	"github.com/student-tracker/tracker-service/internal/models"
	"github.com/student-tracker/tracker-service/internal/repositories"
)

type AssignmentPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewAssignmentPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.AssignmentRepository {
	return &AssignmentPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// getDB returns the transaction DB if provided, otherwise the default DB
func (a *AssignmentPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return a.db
}

// Create persists a new assignment and invalidates the owner's cached reads
func (a *AssignmentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, assignment *models.Assignment) error {
	if err := a.getDB(tx).WithContext(ctx).Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	cache.InvalidateOwnerCache(ctx, a.cacheManager.Assignment, assignment.OwnerID)

	return nil
}

// GetByID retrieves one assignment, scoped to its owner
func (a *AssignmentPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint, ownerID string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := a.getDB(tx).WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&assignment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &assignment, nil
}

// ListByOwner returns all assignments owned by ownerID, cached per owner
func (a *AssignmentPostgreSQL) ListByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Assignment, error) {
	cacheKey := fmt.Sprintf("owner:%s:list", ownerID)
	var assignments []*models.Assignment

	err := a.cacheManager.Assignment.CacheOrExecute(ctx, cacheKey, &assignments, cache.AssignmentCacheConfig.TTL, func() (interface{}, error) {
		var dbAssignments []*models.Assignment
		err := a.getDB(tx).WithContext(ctx).
			Where("owner_id = ?", ownerID).
			Find(&dbAssignments).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list assignments: %w", err)
		}
		return dbAssignments, nil
	})
	if err != nil {
		return nil, err
	}

	return assignments, nil
}

// ListPendingByOwner returns the owner's Pending assignments, uncached: the
// deadline watcher reads these on a timer and must see fresh status.
func (a *AssignmentPostgreSQL) ListPendingByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Assignment, error) {
	var assignments []*models.Assignment
	err := a.getDB(tx).WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, models.AssignmentPending).
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending assignments: %w", err)
	}
	return assignments, nil
}

// Update saves the full record and invalidates the owner's cached reads
func (a *AssignmentPostgreSQL) Update(ctx context.Context, tx *gorm.DB, assignment *models.Assignment) error {
	if err := a.getDB(tx).WithContext(ctx).Save(assignment).Error; err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	cache.InvalidateOwnerCache(ctx, a.cacheManager.Assignment, assignment.OwnerID)

	return nil
}

// Delete removes an assignment, scoped to its owner
func (a *AssignmentPostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint, ownerID string) error {
	result := a.getDB(tx).WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Assignment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateOwnerCache(ctx, a.cacheManager.Assignment, ownerID)

	return nil
}
