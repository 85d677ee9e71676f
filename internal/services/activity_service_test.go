package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/student-tracker/tracker-service/internal/models"
	"github.com/student-tracker/tracker-service/internal/validator"
)

func newActivityService(repo *mockRepository) ActivityService {
	return NewActivityService(repo, nil, testLogger(), validator.New())
}

func TestActivityCreateStampsStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		dueDate time.Time
		want    models.ActivityStatus
	}{
		{name: "due tomorrow", dueDate: time.Now().AddDate(0, 0, 1), want: models.ActivityPending},
		// Past-day due dates report Done, not Overdue.
		{name: "due yesterday", dueDate: time.Now().AddDate(0, 0, -1), want: models.ActivityDone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newActivityService(newMockRepository())
			created, err := svc.Create(ctx, &CreateActivityRequest{
				Title:   "Quiz",
				Type:    "Quiz",
				Course:  "Math",
				DueDate: tt.dueDate,
			}, "user-1")
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if created.Status != tt.want {
				t.Errorf("status = %v, want %v", created.Status, tt.want)
			}
		})
	}
}

func TestActivityCreateMissingFields(t *testing.T) {
	svc := newActivityService(newMockRepository())

	_, err := svc.Create(context.Background(), &CreateActivityRequest{Title: "Quiz"}, "user-1")
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
}

func TestActivityUpdateRecomputesOnlyOnDueDateChange(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	svc := newActivityService(repo)

	created, err := svc.Create(ctx, &CreateActivityRequest{
		Title:   "Quiz",
		Type:    "Quiz",
		Course:  "Math",
		DueDate: time.Now().AddDate(0, 0, 1),
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Unrelated update keeps the stored status, even when stale.
	repo.activities[created.ID].Status = models.ActivityDone
	newType := "Homework"
	updated, err := svc.Update(ctx, created.ID, &UpdateActivityRequest{Type: &newType}, "user-1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.ActivityDone {
		t.Errorf("status recomputed on unrelated update: got %v", updated.Status)
	}

	// A due-date change re-derives status from the new value.
	pastDue := time.Now().AddDate(0, 0, -3)
	updated, err = svc.Update(ctx, created.ID, &UpdateActivityRequest{DueDate: &pastDue}, "user-1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.ActivityDone {
		t.Errorf("status = %v, want Done for past due date", updated.Status)
	}
}

func TestActivityOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc := newActivityService(newMockRepository())

	created, err := svc.Create(ctx, &CreateActivityRequest{
		Title:   "Quiz",
		Type:    "Quiz",
		Course:  "Math",
		DueDate: time.Now().AddDate(0, 0, 1),
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID, "user-2"); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("delete by other user: got %v, want ErrActivityNotFound", err)
	}
}

func TestActivityCourseStaysFreeText(t *testing.T) {
	ctx := context.Background()
	svc := newActivityService(newMockRepository())

	// Course is a label, not a reference; any string is accepted.
	created, err := svc.Create(ctx, &CreateActivityRequest{
		Title:   "Reading",
		Type:    "Reading",
		Course:  "A course that exists nowhere else",
		DueDate: time.Now().AddDate(0, 0, 2),
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Course != "A course that exists nowhere else" {
		t.Errorf("course label altered: %q", created.Course)
	}
}
