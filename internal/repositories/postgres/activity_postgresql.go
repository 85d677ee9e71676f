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

type ActivityPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewActivityPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ActivityRepository {
	return &ActivityPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (a *ActivityPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return a.db
}

func (a *ActivityPostgreSQL) Create(ctx context.Context, tx *gorm.DB, activity *models.Activity) error {
	if err := a.getDB(tx).WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	cache.InvalidateOwnerCache(ctx, a.cacheManager.Activity, activity.OwnerID)

	return nil
}

func (a *ActivityPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint, ownerID string) (*models.Activity, error) {
	var activity models.Activity
	err := a.getDB(tx).WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&activity).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return &activity, nil
}

func (a *ActivityPostgreSQL) ListByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Activity, error) {
	cacheKey := fmt.Sprintf("owner:%s:list", ownerID)
	var activities []*models.Activity

	err := a.cacheManager.Activity.CacheOrExecute(ctx, cacheKey, &activities, cache.ActivityCacheConfig.TTL, func() (interface{}, error) {
		var dbActivities []*models.Activity
		err := a.getDB(tx).WithContext(ctx).
			Where("owner_id = ?", ownerID).
			Find(&dbActivities).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list activities: %w", err)
		}
		return dbActivities, nil
	})
	if err != nil {
		return nil, err
	}

	return activities, nil
}

// ListPendingByOwner is uncached; the deadline watcher polls it.
func (a *ActivityPostgreSQL) ListPendingByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Activity, error) {
	var activities []*models.Activity
	err := a.getDB(tx).WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, models.ActivityPending).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending activities: %w", err)
	}
	return activities, nil
}

func (a *ActivityPostgreSQL) Update(ctx context.Context, tx *gorm.DB, activity *models.Activity) error {
	if err := a.getDB(tx).WithContext(ctx).Save(activity).Error; err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	cache.InvalidateOwnerCache(ctx, a.cacheManager.Activity, activity.OwnerID)

	return nil
}

func (a *ActivityPostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint, ownerID string) error {
	result := a.getDB(tx).WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Activity{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateOwnerCache(ctx, a.cacheManager.Activity, ownerID)

	return nil
}
