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

type assignmentService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAssignmentService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) AssignmentService {
	return &assignmentService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *assignmentService) List(ctx context.Context, userID string) ([]*models.Assignment, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	return s.repo.Assignment().ListByOwner(ctx, nil, userID)
}

func (s *assignmentService) Create(ctx context.Context, req *CreateAssignmentRequest, userID string) (*models.Assignment, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.GetBusinessValidator().ValidateAssignmentCreate(req); len(errs) > 0 {
		return nil, errs
	}

	assignment := &models.Assignment{
		Title:         req.Title,
		Instructor:    req.Instructor,
		DueDate:       req.DueDate,
		TotalMarks:    req.TotalMarks,
		ObtainedMarks: req.ObtainedMarks,
		Status:        status.ForAssignment(req.DueDate, req.ObtainedMarks, time.Now()),
		OwnerID:       userID,
	}

	if err := s.repo.Assignment().Create(ctx, nil, assignment); err != nil {
		return nil, err
	}

	s.logger.Info("Assignment created",
		"assignment_id", assignment.ID,
		"owner_id", userID,
		"status", assignment.Status)
	return assignment, nil
}

func (s *assignmentService) Update(ctx context.Context, id uint, req *UpdateAssignmentRequest, userID string) (*models.Assignment, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.GetBusinessValidator().ValidateAssignmentUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	assignment, err := s.repo.Assignment().GetByID(ctx, nil, id, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	// Absent fields keep their prior values.
	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Instructor != nil {
		assignment.Instructor = *req.Instructor
	}
	if req.DueDate != nil {
		assignment.DueDate = *req.DueDate
	}
	if req.TotalMarks != nil {
		assignment.TotalMarks = *req.TotalMarks
	}
	if req.ObtainedMarks != nil {
		assignment.ObtainedMarks = req.ObtainedMarks
	}

	// Status is recomputed only when a status-relevant field is part of the
	// payload; time passing alone never flips a stored status.
	if req.DueDate != nil || req.ObtainedMarks != nil {
		assignment.Status = status.ForAssignment(assignment.DueDate, assignment.ObtainedMarks, time.Now())
	}

	if err := s.repo.Assignment().Update(ctx, nil, assignment); err != nil {
		return nil, err
	}

	s.logger.Info("Assignment updated",
		"assignment_id", assignment.ID,
		"owner_id", userID,
		"status", assignment.Status)
	return assignment, nil
}

func (s *assignmentService) Delete(ctx context.Context, id uint, userID string) error {
	if userID == "" {
		return ErrUnauthorized
	}

	if err := s.repo.Assignment().Delete(ctx, nil, id, userID); err != nil {
		if isRecordNotFound(err) {
			return ErrAssignmentNotFound
		}
		return err
	}

	s.logger.Info("Assignment deleted", "assignment_id", id, "owner_id", userID)
	return nil
}
