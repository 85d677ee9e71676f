package services

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/student-tracker/tracker-service/internal/models"
	"github.com/student-tracker/tracker-service/internal/repositories"
	"github.com/student-tracker/tracker-service/internal/validator"
)

// Courses are plain CRUD: no derived status, and progress is stored as given.
type courseService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCourseService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) CourseService {
	return &courseService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *courseService) List(ctx context.Context, userID string) ([]*models.Course, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	return s.repo.Course().ListByOwner(ctx, nil, userID)
}

func (s *courseService) Create(ctx context.Context, req *CreateCourseRequest, userID string) (*models.Course, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.GetBusinessValidator().ValidateCourseCreate(req); len(errs) > 0 {
		return nil, errs
	}

	course := &models.Course{
		Title:      req.Title,
		Instructor: req.Instructor,
		Progress:   req.Progress,
		OwnerID:    userID,
	}

	if err := s.repo.Course().Create(ctx, nil, course); err != nil {
		return nil, err
	}

	s.logger.Info("Course created", "course_id", course.ID, "owner_id", userID)
	return course, nil
}

func (s *courseService) Update(ctx context.Context, id uint, req *UpdateCourseRequest, userID string) (*models.Course, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.GetBusinessValidator().ValidateCourseUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	course, err := s.repo.Course().GetByID(ctx, nil, id, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Instructor != nil {
		course.Instructor = *req.Instructor
	}
	if req.Progress != nil {
		course.Progress = *req.Progress
	}

	if err := s.repo.Course().Update(ctx, nil, course); err != nil {
		return nil, err
	}

	s.logger.Info("Course updated", "course_id", course.ID, "owner_id", userID)
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id uint, userID string) error {
	if userID == "" {
		return ErrUnauthorized
	}

	if err := s.repo.Course().Delete(ctx, nil, id, userID); err != nil {
		if isRecordNotFound(err) {
			return ErrCourseNotFound
		}
		return err
	}

	s.logger.Info("Course deleted", "course_id", id, "owner_id", userID)
	return nil
}
