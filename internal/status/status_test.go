package status

import (
	"testing"
	"time"

	"github.com/student-tracker/tracker-service/internal/models"
)

var now = time.Date(2025, 3, 14, 15, 30, 0, 0, time.Local)

func marks(v float64) *float64 { return &v }

func TestForAssignment(t *testing.T) {
	tests := []struct {
		name          string
		dueDate       time.Time
		obtainedMarks *float64
		want          models.AssignmentStatus
	}{
		{
			name:    "due tomorrow ungraded",
			dueDate: now.AddDate(0, 0, 1),
			want:    models.AssignmentPending,
		},
		{
			name:    "due later today ungraded",
			dueDate: time.Date(2025, 3, 14, 23, 0, 0, 0, time.Local),
			want:    models.AssignmentPending,
		},
		{
			name:    "due exactly at start of today",
			dueDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local),
			want:    models.AssignmentPending,
		},
		{
			name:    "due yesterday ungraded",
			dueDate: now.AddDate(0, 0, -1),
			want:    models.AssignmentOverdue,
		},
		{
			name:    "due a second before midnight yesterday",
			dueDate: time.Date(2025, 3, 13, 23, 59, 59, 0, time.Local),
			want:    models.AssignmentOverdue,
		},
		{
			name:          "graded overrides past due date",
			dueDate:       now.AddDate(0, 0, -1),
			obtainedMarks: marks(85),
			want:          models.AssignmentSubmitted,
		},
		{
			name:          "zero marks still counts as graded",
			dueDate:       now.AddDate(0, 0, -1),
			obtainedMarks: marks(0),
			want:          models.AssignmentSubmitted,
		},
		{
			name:          "graded with future due date",
			dueDate:       now.AddDate(0, 0, 7),
			obtainedMarks: marks(42),
			want:          models.AssignmentSubmitted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForAssignment(tt.dueDate, tt.obtainedMarks, now); got != tt.want {
				t.Errorf("ForAssignment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForActivity(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	laterToday := time.Date(2025, 3, 14, 22, 0, 0, 0, time.Local)
	startOfToday := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		dueDate *time.Time
		want    models.ActivityStatus
	}{
		{name: "no due date", dueDate: nil, want: models.ActivityPending},
		{name: "due tomorrow", dueDate: &tomorrow, want: models.ActivityPending},
		{name: "due later today", dueDate: &laterToday, want: models.ActivityPending},
		{name: "due at start of today", dueDate: &startOfToday, want: models.ActivityPending},
		// Past-day activities map to Done, not Overdue.
		{name: "due yesterday", dueDate: &yesterday, want: models.ActivityDone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForActivity(tt.dueDate, now); got != tt.want {
				t.Errorf("ForActivity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForActivityNeverOverdue(t *testing.T) {
	for days := -30; days <= 30; days++ {
		due := now.AddDate(0, 0, days)
		if got := ForActivity(&due, now); got == models.ActivityOverdue {
			t.Fatalf("ForActivity returned Overdue for due date %v", due)
		}
	}
}
