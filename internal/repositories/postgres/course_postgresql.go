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

type CoursePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewCoursePostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.CourseRepository {
	return &CoursePostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (c *CoursePostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return c.db
}

func (c *CoursePostgreSQL) Create(ctx context.Context, tx *gorm.DB, course *models.Course) error {
	if err := c.getDB(tx).WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	cache.InvalidateOwnerCache(ctx, c.cacheManager.Course, course.OwnerID)

	return nil
}

func (c *CoursePostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint, ownerID string) (*models.Course, error) {
	var course models.Course
	err := c.getDB(tx).WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&course).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

func (c *CoursePostgreSQL) ListByOwner(ctx context.Context, tx *gorm.DB, ownerID string) ([]*models.Course, error) {
	cacheKey := fmt.Sprintf("owner:%s:list", ownerID)
	var courses []*models.Course

	err := c.cacheManager.Course.CacheOrExecute(ctx, cacheKey, &courses, cache.CourseCacheConfig.TTL, func() (interface{}, error) {
		var dbCourses []*models.Course
		err := c.getDB(tx).WithContext(ctx).
			Where("owner_id = ?", ownerID).
			Find(&dbCourses).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list courses: %w", err)
		}
		return dbCourses, nil
	})
	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (c *CoursePostgreSQL) Update(ctx context.Context, tx *gorm.DB, course *models.Course) error {
	if err := c.getDB(tx).WithContext(ctx).Save(course).Error; err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	cache.InvalidateOwnerCache(ctx, c.cacheManager.Course, course.OwnerID)

	return nil
}

func (c *CoursePostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint, ownerID string) error {
	result := c.getDB(tx).WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Course{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete course: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateOwnerCache(ctx, c.cacheManager.Course, ownerID)

	return nil
}
