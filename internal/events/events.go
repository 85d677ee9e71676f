// Package events carries due-soon notification events from the deadline
// watcher to whatever collaborator delivers them. The watcher decides *that*
// a record should be notified; delivery (toast, sound, banner) happens on the
// other side of the publisher.
package events

import (
	"context"
	"time"
)

const NotificationTopic = "notifications.due_soon"

type RecordKind string

const (
	KindAssignment RecordKind = "assignment"
	KindActivity   RecordKind = "activity"
)

// NotificationEvent is one due-soon notification request. There is no
// suppression memory: the same still-Pending record is re-emitted on every
// scan inside its lookahead window. RecordKey is deterministic so a consumer
// that wants dedup can build it without help from the watcher.
type NotificationEvent struct {
	ID        string     `json:"id"`
	RecordKey string     `json:"record_key"`
	Kind      RecordKind `json:"kind"`
	RecordID  uint       `json:"record_id"`
	OwnerID   string     `json:"owner_id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	DueDate   time.Time  `json:"due_date"`
	EmittedAt time.Time  `json:"emitted_at"`
}

// EventPublisher abstracts the transport. Fire-and-forget from the watcher's
// point of view: no acknowledgment is awaited beyond the publish error.
type EventPublisher interface {
	PublishNotification(ctx context.Context, event NotificationEvent) error
	Close() error
}
