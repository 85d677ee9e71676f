package services

import (
	"context"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"github.com/student-tracker/tracker-service/internal/models"
	"github.com/student-tracker/tracker-service/internal/repositories"
)

// In-memory Repository used by the service tests.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockRepository struct {
	users       map[string]*models.User
	courses     map[uint]*models.Course
	assignments map[uint]*models.Assignment
	activities  map[uint]*models.Activity
	nextID      uint

	// failWith, when set, is returned by every store operation.
	failWith error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:       make(map[string]*models.User),
		courses:     make(map[uint]*models.Course),
		assignments: make(map[uint]*models.Assignment),
		activities:  make(map[uint]*models.Activity),
	}
}

func (m *mockRepository) User() repositories.UserRepository             { return &mockUserRepo{m} }
func (m *mockRepository) Course() repositories.CourseRepository         { return &mockCourseRepo{m} }
func (m *mockRepository) Assignment() repositories.AssignmentRepository { return &mockAssignmentRepo{m} }
func (m *mockRepository) Activity() repositories.ActivityRepository     { return &mockActivityRepo{m} }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	if m.failWith != nil {
		return m.failWith
	}
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return m.failWith }
func (m *mockRepository) Close() error                   { return nil }

func (m *mockRepository) allocID() uint {
	m.nextID++
	return m.nextID
}

// ----- users -----

type mockUserRepo struct{ m *mockRepository }

func (r *mockUserRepo) Create(_ context.Context, _ *gorm.DB, user *models.User) error {
	if r.m.failWith != nil {
		return r.m.failWith
	}
	r.m.users[user.ID] = user
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, _ *gorm.DB, id string) (*models.User, error) {
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}
	if u, ok := r.m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) ExistsByEmail(_ context.Context, _ *gorm.DB, email string) (bool, error) {
	for _, u := range r.m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockUserRepo) Update(_ context.Context, _ *gorm.DB, user *models.User) error {
	r.m.users[user.ID] = user
	return nil
}

// ----- courses -----

type mockCourseRepo struct{ m *mockRepository }

func (r *mockCourseRepo) Create(_ context.Context, _ *gorm.DB, course *models.Course) error {
	if r.m.failWith != nil {
		return r.m.failWith
	}
	course.ID = r.m.allocID()
	r.m.courses[course.ID] = course
	return nil
}

func (r *mockCourseRepo) GetByID(_ context.Context, _ *gorm.DB, id uint, ownerID string) (*models.Course, error) {
	if c, ok := r.m.courses[id]; ok && c.OwnerID == ownerID {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockCourseRepo) ListByOwner(_ context.Context, _ *gorm.DB, ownerID string) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range r.m.courses {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *mockCourseRepo) Update(_ context.Context, _ *gorm.DB, course *models.Course) error {
	r.m.courses[course.ID] = course
	return nil
}

func (r *mockCourseRepo) Delete(_ context.Context, _ *gorm.DB, id uint, ownerID string) error {
	if c, ok := r.m.courses[id]; ok && c.OwnerID == ownerID {
		delete(r.m.courses, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ----- assignments -----

type mockAssignmentRepo struct{ m *mockRepository }

func (r *mockAssignmentRepo) Create(_ context.Context, _ *gorm.DB, assignment *models.Assignment) error {
	if r.m.failWith != nil {
		return r.m.failWith
	}
	assignment.ID = r.m.allocID()
	r.m.assignments[assignment.ID] = assignment
	return nil
}

func (r *mockAssignmentRepo) GetByID(_ context.Context, _ *gorm.DB, id uint, ownerID string) (*models.Assignment, error) {
	if a, ok := r.m.assignments[id]; ok && a.OwnerID == ownerID {
		copied := *a
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockAssignmentRepo) ListByOwner(_ context.Context, _ *gorm.DB, ownerID string) ([]*models.Assignment, error) {
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}
	var out []*models.Assignment
	for _, a := range r.m.assignments {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *mockAssignmentRepo) ListPendingByOwner(_ context.Context, _ *gorm.DB, ownerID string) ([]*models.Assignment, error) {
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}
	var out []*models.Assignment
	for _, a := range r.m.assignments {
		if a.OwnerID == ownerID && a.Status == models.AssignmentPending {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *mockAssignmentRepo) Update(_ context.Context, _ *gorm.DB, assignment *models.Assignment) error {
	if r.m.failWith != nil {
		return r.m.failWith
	}
	r.m.assignments[assignment.ID] = assignment
	return nil
}

func (r *mockAssignmentRepo) Delete(_ context.Context, _ *gorm.DB, id uint, ownerID string) error {
	if a, ok := r.m.assignments[id]; ok && a.OwnerID == ownerID {
		delete(r.m.assignments, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ----- activities -----

type mockActivityRepo struct{ m *mockRepository }

func (r *mockActivityRepo) Create(_ context.Context, _ *gorm.DB, activity *models.Activity) error {
	if r.m.failWith != nil {
		return r.m.failWith
	}
	activity.ID = r.m.allocID()
	r.m.activities[activity.ID] = activity
	return nil
}

func (r *mockActivityRepo) GetByID(_ context.Context, _ *gorm.DB, id uint, ownerID string) (*models.Activity, error) {
	if a, ok := r.m.activities[id]; ok && a.OwnerID == ownerID {
		copied := *a
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockActivityRepo) ListByOwner(_ context.Context, _ *gorm.DB, ownerID string) ([]*models.Activity, error) {
	var out []*models.Activity
	for _, a := range r.m.activities {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *mockActivityRepo) ListPendingByOwner(_ context.Context, _ *gorm.DB, ownerID string) ([]*models.Activity, error) {
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}
	var out []*models.Activity
	for _, a := range r.m.activities {
		if a.OwnerID == ownerID && a.Status == models.ActivityPending {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *mockActivityRepo) Update(_ context.Context, _ *gorm.DB, activity *models.Activity) error {
	r.m.activities[activity.ID] = activity
	return nil
}

func (r *mockActivityRepo) Delete(_ context.Context, _ *gorm.DB, id uint, ownerID string) error {
	if a, ok := r.m.activities[id]; ok && a.OwnerID == ownerID {
		delete(r.m.activities, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}
