package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/student-tracker/tracker-service/internal/models"
	"github.com/student-tracker/tracker-service/internal/repositories"
	"github.com/student-tracker/tracker-service/internal/validator"
)

const bcryptCost = 12

type userService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

// Register creates a password-based user. Federated identities are created
// lazily by the auth middleware and never pass through here.
func (s *userService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if errs := s.validator.GetBusinessValidator().ValidateRegister(req); len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Provider:     models.ProviderLocal,
		PasswordHash: string(hash),
	}

	// Existence check and insert share one transaction so two racing
	// registrations for the same email cannot both succeed.
	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		exists, err := txRepo.User().ExistsByEmail(ctx, nil, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailAlreadyRegistered
		}
		return txRepo.User().Create(ctx, nil, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID)
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.repo.User().GetByID(ctx, nil, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.Struct(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.repo.User().GetByID(ctx, nil, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if len(req.Preferences) > 0 {
		user.Preferences = req.Preferences
	}

	if err := s.repo.User().Update(ctx, nil, user); err != nil {
		return nil, err
	}

	s.logger.Info("User profile updated", "user_id", userID)
	return user, nil
}
