package services

import (
	"errors"

	"gorm.io/gorm"
)

// Service error taxonomy. Not-found is reported uniformly whether the record
// does not exist or belongs to another user; callers cannot probe for other
// users' records.
var (
	ErrUnauthorized = errors.New("unauthorized: no resolved user identity")

	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrEmailAlreadyRegistered = errors.New("user already exists")
)

// isRecordNotFound reports whether a repository error means "no such row",
// possibly wrapped.
func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
