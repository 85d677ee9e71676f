// Package status derives record lifecycle statuses from due dates and
// grading state. Derivations are pure: callers pass "now" explicitly and
// stamp the result at write time.
package status

import (
	"time"

	"github.com/student-tracker/tracker-service/internal/models"
)

// StartOfDay truncates t to midnight in t's location. Due dates are compared
// against the start of "today" so a due date later today still counts as not
// yet due.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ForAssignment derives an assignment status. A recorded grade is
// authoritative over timing: any non-nil obtainedMarks (including zero)
// yields Submitted.
func ForAssignment(dueDate time.Time, obtainedMarks *float64, now time.Time) models.AssignmentStatus {
	if obtainedMarks != nil {
		return models.AssignmentSubmitted
	}
	if !dueDate.Before(StartOfDay(now)) {
		return models.AssignmentPending
	}
	return models.AssignmentOverdue
}

// ForActivity derives an activity status. A nil due date yields Pending.
//
// Note the mapping: a due date before the start of today yields Done, today
// or later yields Pending, and Overdue is never produced. A past-due activity
// is therefore reported Done rather than Overdue. This mirrors the behavior
// callers and existing data depend on; do not change it without a product
// decision.
func ForActivity(dueDate *time.Time, now time.Time) models.ActivityStatus {
	if dueDate == nil {
		return models.ActivityPending
	}
	if dueDate.Before(StartOfDay(now)) {
		return models.ActivityDone
	}
	return models.ActivityPending
}
