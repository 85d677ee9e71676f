package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/student-tracker/tracker-service/internal/events"
	"github.com/student-tracker/tracker-service/internal/repositories"
)

// Lookahead windows used by the two trigger paths.
const (
	// PollWindow covers the periodic background check.
	PollWindow = 24 * time.Hour
	// LoginWindow covers the on-demand check right after a user signs in.
	LoginWindow = 48 * time.Hour
)

const dueDateFormat = "Jan 2, 2006 3:04 PM"

type watcherService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewWatcherService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger) WatcherService {
	return &watcherService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// SelectDueSoon returns the user's Pending records with
// now <= dueDate <= now+window. It is a pure filter over the store: no
// persistence, no suppression memory, so a record still Pending on the next
// call is selected again.
func (s *watcherService) SelectDueSoon(ctx context.Context, userID string, now time.Time, window time.Duration) ([]DueSoonNotification, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	deadline := now.Add(window)
	var selected []DueSoonNotification

	assignments, err := s.repo.Assignment().ListPendingByOwner(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		if inWindow(a.DueDate, now, deadline) {
			selected = append(selected, DueSoonNotification{
				Kind:     events.KindAssignment,
				RecordID: a.ID,
				Title:    "Assignment Due Soon",
				Body:     fmt.Sprintf("%s due on %s", a.Title, a.DueDate.Format(dueDateFormat)),
				DueDate:  a.DueDate,
			})
		}
	}

	activities, err := s.repo.Activity().ListPendingByOwner(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	for _, act := range activities {
		if act.DueDate == nil {
			continue
		}
		if inWindow(*act.DueDate, now, deadline) {
			selected = append(selected, DueSoonNotification{
				Kind:     events.KindActivity,
				RecordID: act.ID,
				Title:    "Activity Due Soon",
				Body:     fmt.Sprintf("%s (%s) is pending - due %s", act.Title, act.Course, act.DueDate.Format(dueDateFormat)),
				DueDate:  *act.DueDate,
			})
		}
	}

	return selected, nil
}

// Scan selects due-soon records and emits one notification event per record.
// A failed publish is logged and skipped; it never suppresses the remaining
// notifications in the same scan. Returns the number of events emitted.
func (s *watcherService) Scan(ctx context.Context, userID string, now time.Time, window time.Duration) (int, error) {
	selected, err := s.SelectDueSoon(ctx, userID, now, window)
	if err != nil {
		return 0, err
	}

	emitted := 0
	for _, n := range selected {
		event := events.NotificationEvent{
			ID:        uuid.NewString(),
			RecordKey: fmt.Sprintf("%s:%d", n.Kind, n.RecordID),
			Kind:      n.Kind,
			RecordID:  n.RecordID,
			OwnerID:   userID,
			Title:     n.Title,
			Body:      n.Body,
			DueDate:   n.DueDate,
			EmittedAt: now,
		}
		if err := s.publisher.PublishNotification(ctx, event); err != nil {
			s.logger.Error("Failed to publish due-soon notification",
				"error", err,
				"record_key", event.RecordKey,
				"owner_id", userID)
			continue
		}
		emitted++
	}

	if emitted > 0 {
		s.logger.Info("Deadline scan complete",
			"owner_id", userID,
			"selected", len(selected),
			"emitted", emitted,
			"window", window)
	}
	return emitted, nil
}

// inWindow checks now <= due <= deadline, bounds inclusive.
func inWindow(due, now, deadline time.Time) bool {
	return !due.Before(now) && !due.After(deadline)
}
