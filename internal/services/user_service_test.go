package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/student-tracker/tracker-service/internal/validator"
)

func newUserService(repo *mockRepository) UserService {
	return NewUserService(repo, nil, testLogger(), validator.New())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(newMockRepository())

	user, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Error("expected server-assigned id")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(newMockRepository())

	req := &RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Errorf("second Register: got %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(newMockRepository())

	_, err := svc.Register(context.Background(), &RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "short"})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
}

func TestUpdateProfileUnauthorized(t *testing.T) {
	svc := newUserService(newMockRepository())

	if _, err := svc.UpdateProfile(context.Background(), "", &UpdateProfileRequest{}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}
