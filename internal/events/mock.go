package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// MockEventPublisher records published events for tests. FailFor makes
// publishing fail for specific record keys to exercise per-record error
// handling in scans.
type MockEventPublisher struct {
	mu        sync.Mutex
	logger    *slog.Logger
	Published []NotificationEvent
	FailFor   map[string]bool
	closed    bool
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{
		logger:  logger,
		FailFor: make(map[string]bool),
	}
}

func (m *MockEventPublisher) PublishNotification(_ context.Context, event NotificationEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errors.New("publisher closed")
	}
	if m.FailFor[event.RecordKey] {
		return errors.New("simulated publish failure")
	}

	m.Published = append(m.Published, event)
	m.logger.Debug("Mock publish", "record_key", event.RecordKey)
	return nil
}

func (m *MockEventPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Events returns a copy of everything published so far.
func (m *MockEventPublisher) Events() []NotificationEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]NotificationEvent, len(m.Published))
	copy(out, m.Published)
	return out
}
