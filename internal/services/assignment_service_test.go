package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/student-tracker/tracker-service/internal/models"
	"github.com/student-tracker/tracker-service/internal/validator"
)

func newAssignmentService(repo *mockRepository) AssignmentService {
	return NewAssignmentService(repo, nil, testLogger(), validator.New())
}

func marksOf(v float64) *float64 { return &v }

func TestAssignmentCreateStampsStatus(t *testing.T) {
	ctx := context.Background()
	tomorrow := time.Now().AddDate(0, 0, 1)
	yesterday := time.Now().AddDate(0, 0, -1)

	tests := []struct {
		name string
		req  CreateAssignmentRequest
		want models.AssignmentStatus
	}{
		{
			name: "future due ungraded",
			req:  CreateAssignmentRequest{Title: "Essay", Instructor: "Dr. X", DueDate: tomorrow, TotalMarks: 100},
			want: models.AssignmentPending,
		},
		{
			name: "past due ungraded",
			req:  CreateAssignmentRequest{Title: "Lab 1", Instructor: "Dr. X", DueDate: yesterday, TotalMarks: 50},
			want: models.AssignmentOverdue,
		},
		{
			name: "graded regardless of due date",
			req:  CreateAssignmentRequest{Title: "Quiz", Instructor: "Dr. X", DueDate: yesterday, TotalMarks: 10, ObtainedMarks: marksOf(0)},
			want: models.AssignmentSubmitted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAssignmentService(newMockRepository())
			created, err := svc.Create(ctx, &tt.req, "user-1")
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if created.Status != tt.want {
				t.Errorf("status = %v, want %v", created.Status, tt.want)
			}
			if created.ID == 0 {
				t.Error("expected server-assigned id")
			}
			if created.OwnerID != "user-1" {
				t.Errorf("owner = %q, want user-1", created.OwnerID)
			}
		})
	}
}

func TestAssignmentCreateMissingFields(t *testing.T) {
	svc := newAssignmentService(newMockRepository())

	_, err := svc.Create(context.Background(), &CreateAssignmentRequest{Title: "Essay"}, "user-1")
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(verrs.MissingFields()) == 0 {
		t.Error("expected missing-field context in validation error")
	}
}

func TestAssignmentGradeFlipsToSubmitted(t *testing.T) {
	ctx := context.Background()
	svc := newAssignmentService(newMockRepository())

	created, err := svc.Create(ctx, &CreateAssignmentRequest{
		Title:      "Essay",
		Instructor: "Dr. X",
		DueDate:    time.Now().AddDate(0, 0, 1),
		TotalMarks: 100,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.AssignmentPending {
		t.Fatalf("precondition: status = %v, want Pending", created.Status)
	}

	updated, err := svc.Update(ctx, created.ID, &UpdateAssignmentRequest{ObtainedMarks: marksOf(85)}, "user-1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.AssignmentSubmitted {
		t.Errorf("status after grading = %v, want Submitted", updated.Status)
	}
	if updated.ObtainedMarks == nil || *updated.ObtainedMarks != 85 {
		t.Errorf("obtained marks = %v, want 85", updated.ObtainedMarks)
	}
	// Untouched fields keep prior values.
	if updated.Title != "Essay" || updated.TotalMarks != 100 {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
}

func TestAssignmentUnrelatedUpdateKeepsStaleStatus(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	svc := newAssignmentService(repo)

	created, err := svc.Create(ctx, &CreateAssignmentRequest{
		Title:      "Essay",
		Instructor: "Dr. X",
		DueDate:    time.Now().AddDate(0, 0, 1),
		TotalMarks: 100,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Simulate a record whose stored status went stale since its last write.
	repo.assignments[created.ID].Status = models.AssignmentOverdue

	instructor := "Dr. Y"
	updated, err := svc.Update(ctx, created.ID, &UpdateAssignmentRequest{Instructor: &instructor}, "user-1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.AssignmentOverdue {
		t.Errorf("status recomputed on unrelated update: got %v", updated.Status)
	}
	if updated.Instructor != "Dr. Y" {
		t.Errorf("instructor = %q, want Dr. Y", updated.Instructor)
	}
}

func TestAssignmentDueDateChangeRecomputesStatus(t *testing.T) {
	ctx := context.Background()
	svc := newAssignmentService(newMockRepository())

	created, err := svc.Create(ctx, &CreateAssignmentRequest{
		Title:      "Essay",
		Instructor: "Dr. X",
		DueDate:    time.Now().AddDate(0, 0, 1),
		TotalMarks: 100,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	pastDue := time.Now().AddDate(0, 0, -2)
	updated, err := svc.Update(ctx, created.ID, &UpdateAssignmentRequest{DueDate: &pastDue}, "user-1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.AssignmentOverdue {
		t.Errorf("status = %v, want Overdue after due date moved to the past", updated.Status)
	}
}

func TestAssignmentOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc := newAssignmentService(newMockRepository())

	created, err := svc.Create(ctx, &CreateAssignmentRequest{
		Title:      "Essay",
		Instructor: "Dr. X",
		DueDate:    time.Now().AddDate(0, 0, 1),
		TotalMarks: 100,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "Hijacked"
	if _, err := svc.Update(ctx, created.ID, &UpdateAssignmentRequest{Title: &title}, "user-2"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("update by other user: got %v, want ErrAssignmentNotFound", err)
	}
	if err := svc.Delete(ctx, created.ID, "user-2"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("delete by other user: got %v, want ErrAssignmentNotFound", err)
	}

	// The owner still sees the record.
	list, err := svc.List(ctx, "user-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("owner list = %v records, err %v", len(list), err)
	}
}

func TestAssignmentUnauthorized(t *testing.T) {
	ctx := context.Background()
	svc := newAssignmentService(newMockRepository())

	if _, err := svc.List(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("List: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Create(ctx, &CreateAssignmentRequest{}, ""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Create: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Update(ctx, 1, &UpdateAssignmentRequest{}, ""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Update: got %v, want ErrUnauthorized", err)
	}
	if err := svc.Delete(ctx, 1, ""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Delete: got %v, want ErrUnauthorized", err)
	}
}

func TestAssignmentDeleteTwice(t *testing.T) {
	ctx := context.Background()
	svc := newAssignmentService(newMockRepository())

	created, err := svc.Create(ctx, &CreateAssignmentRequest{
		Title:      "Essay",
		Instructor: "Dr. X",
		DueDate:    time.Now().AddDate(0, 0, 1),
		TotalMarks: 100,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID, "user-1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID, "user-1"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("second delete: got %v, want ErrAssignmentNotFound", err)
	}
}
