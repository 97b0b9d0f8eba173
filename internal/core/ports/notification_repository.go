package ports

import (
	"context"
	"time"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification composed by the dispatch workflow.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification (read state).
	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetForUser retrieves a notification by id, scoped to its recipient.
	// A notification owned by another user yields the same not-found error
	// as a missing one.
	GetForUser(ctx context.Context, id kernel.UUID, userID kernel.UUID) (*notification.Notification, error)

	// MarkAllRead marks every unread notification owned by userID as read at
	// the given time and returns how many rows changed. Zero is a valid
	// result; the operation is idempotent.
	MarkAllRead(ctx context.Context, userID kernel.UUID, readAt time.Time) (int64, error)
}

// OutboxRepository defines the persistence contract for status-change events
// awaiting notification dispatch.
type OutboxRepository interface {
	// Add persists a new event. Callers invoke this inside the same unit of
	// work as the status update that produced the event.
	Add(ctx context.Context, event *notification.Event) error

	// Update persists changes to an existing event (processed state).
	Update(ctx context.Context, event *notification.Event) error

	// GetUnprocessed retrieves up to limit unprocessed events, oldest first.
	// When called inside a transaction the rows are locked with SKIP LOCKED
	// so concurrent dispatchers drain disjoint batches.
	GetUnprocessed(ctx context.Context, limit int) ([]*notification.Event, error)

	// DeleteProcessedBefore removes processed events older than the cutoff
	// and returns how many rows were deleted.
	DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
