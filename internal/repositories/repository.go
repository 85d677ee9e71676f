package repositories

import "context"

// Repository aggregates the per-entity repositories behind one handle.
type Repository interface {
	User() UserRepository
	Course() CourseRepository
	Assignment() AssignmentRepository
	Activity() ActivityRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
