package services

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/student-tracker/tracker-service/internal/models"
	"github.com/student-tracker/tracker-service/internal/repositories"
	"github.com/student-tracker/tracker-service/internal/status"
	"github.com/student-tracker/tracker-service/internal/validator"
)

type activityService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewActivityService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) ActivityService {
	return &activityService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *activityService) List(ctx context.Context, userID string) ([]*models.Activity, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	return s.repo.Activity().ListByOwner(ctx, nil, userID)
}

func (s *activityService) Create(ctx context.Context, req *CreateActivityRequest, userID string) (*models.Activity, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.GetBusinessValidator().ValidateActivityCreate(req); len(errs) > 0 {
		return nil, errs
	}

	dueDate := req.DueDate
	activity := &models.Activity{
		Title:   req.Title,
		Type:    req.Type,
		Course:  req.Course,
		DueDate: &dueDate,
		Status:  status.ForActivity(&dueDate, time.Now()),
		OwnerID: userID,
	}

	if err := s.repo.Activity().Create(ctx, nil, activity); err != nil {
		return nil, err
	}

	s.logger.Info("Activity created",
		"activity_id", activity.ID,
		"owner_id", userID,
		"status", activity.Status)
	return activity, nil
}

func (s *activityService) Update(ctx context.Context, id uint, req *UpdateActivityRequest, userID string) (*models.Activity, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.GetBusinessValidator().ValidateActivityUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	activity, err := s.repo.Activity().GetByID(ctx, nil, id, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Type != nil {
		activity.Type = *req.Type
	}
	if req.Course != nil {
		activity.Course = *req.Course
	}
	if req.DueDate != nil {
		activity.DueDate = req.DueDate
		// Only a due-date change re-derives status.
		activity.Status = status.ForActivity(activity.DueDate, time.Now())
	}

	if err := s.repo.Activity().Update(ctx, nil, activity); err != nil {
		return nil, err
	}

	s.logger.Info("Activity updated",
		"activity_id", activity.ID,
		"owner_id", userID,
		"status", activity.Status)
	return activity, nil
}

func (s *activityService) Delete(ctx context.Context, id uint, userID string) error {
	if userID == "" {
		return ErrUnauthorized
	}

	if err := s.repo.Activity().Delete(ctx, nil, id, userID); err != nil {
		if isRecordNotFound(err) {
			return ErrActivityNotFound
		}
		return err
	}

	s.logger.Info("Activity deleted", "activity_id", id, "owner_id", userID)
	return nil
}
