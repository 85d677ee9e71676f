package validator

import (
	"testing"
	"time"
)

func TestValidateAssignmentCreateMissingFields(t *testing.T) {
	v := New()

	errs := v.GetBusinessValidator().ValidateAssignmentCreate(&AssignmentCreateRequest{})
	if len(errs) == 0 {
		t.Fatal("expected validation errors for empty request")
	}

	missing := map[string]bool{}
	for _, f := range errs.MissingFields() {
		missing[f] = true
	}
	for _, want := range []string{"title", "instructor", "duedate", "totalmarks"} {
		if !missing[want] {
			t.Errorf("expected %q in missing fields, got %v", want, errs.MissingFields())
		}
	}
}

func TestValidateAssignmentCreateOK(t *testing.T) {
	v := New()

	req := &AssignmentCreateRequest{
		Title:      "Essay",
		Instructor: "Dr. X",
		DueDate:    time.Now().AddDate(0, 0, 1),
		TotalMarks: 100,
	}
	if errs := v.GetBusinessValidator().ValidateAssignmentCreate(req); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}

func TestCourseProgressUnbounded(t *testing.T) {
	v := New()

	// Progress has no enforced 0-100 bound.
	req := &CourseCreateRequest{Title: "Math", Instructor: "Dr. Y", Progress: 150}
	if errs := v.GetBusinessValidator().ValidateCourseCreate(req); len(errs) != 0 {
		t.Fatalf("progress should not be bounded, got %v", errs)
	}
}
