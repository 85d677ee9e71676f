package services

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/student-tracker/tracker-service/internal/events"
	"github.com/student-tracker/tracker-service/internal/repositories"
	"github.com/student-tracker/tracker-service/internal/validator"
)

// ServiceManager provides access to all services
type ServiceManager interface {
	User() UserService
	Course() CourseService
	Assignment() AssignmentService
	Activity() ActivityService
	Watcher() WatcherService
}

type DefaultServiceManager struct {
	user       UserService
	course     CourseService
	assignment AssignmentService
	activity   ActivityService
	watcher    WatcherService
}

func NewDefaultServiceManager(
	db *gorm.DB,
	repo repositories.Repository,
	logger *slog.Logger,
	validator *validator.Validator,
	publisher events.EventPublisher,
) *DefaultServiceManager {
	return &DefaultServiceManager{
		user:       NewUserService(repo, db, logger, validator),
		course:     NewCourseService(repo, db, logger, validator),
		assignment: NewAssignmentService(repo, db, logger, validator),
		activity:   NewActivityService(repo, db, logger, validator),
		watcher:    NewWatcherService(repo, publisher, logger),
	}
}

func (m *DefaultServiceManager) User() UserService             { return m.user }
func (m *DefaultServiceManager) Course() CourseService         { return m.course }
func (m *DefaultServiceManager) Assignment() AssignmentService { return m.assignment }
func (m *DefaultServiceManager) Activity() ActivityService     { return m.activity }
func (m *DefaultServiceManager) Watcher() WatcherService       { return m.watcher }
