package notification

import (
	"errors"
	"time"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"
	"bloodlink/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through the NewNotification factory method.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is a recipient-scoped record of a delivery lifecycle event.
// It is created unread by the dispatch workflow and mutated only by its
// recipient acknowledging it.
type Notification struct {
	id         kernel.UUID
	userID     kernel.UUID
	deliveryID kernel.UUID

	title   string
	message string

	read      bool
	createdAt time.Time

	// readAt is set when the recipient acknowledges the notification
	readAt *time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread notification for the given recipient.
// Title and message must be non-empty; they are derived from the event kind
// and delivery context by the dispatch domain service.
func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	deliveryID kernel.UUID,
	title string,
	message string,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setDeliveryID(deliveryID),
		n.setTitle(title),
		n.setMessage(message),
		n.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence,
// including its read state. Used by repository implementations only.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	deliveryID kernel.UUID,
	title string,
	message string,
	createdAt time.Time,
	read bool,
	readAt *time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, deliveryID, title, message, createdAt)
	if err != nil {
		return nil, err
	}

	n.read = read
	n.readAt = readAt

	return n, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// User returns the recipient's user ID.
func (n *Notification) User() kernel.UUID {
	return n.userID
}

// Delivery returns the delivery this notification concerns.
func (n *Notification) Delivery() kernel.UUID {
	return n.deliveryID
}

// Title returns the human-readable headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the human-readable body.
func (n *Notification) Message() string {
	return n.message
}

// IsRead reports whether the recipient has acknowledged the notification.
func (n *Notification) IsRead() bool {
	return n.read
}

// CreatedAt returns when the notification was created.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// ReadAt returns when the recipient acknowledged the notification, or nil.
func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

// MarkRead acknowledges the notification at the given time.
// Returns true when the read state actually changed; acknowledging an
// already-read notification is an idempotent no-op reported as false.
func (n *Notification) MarkRead(at time.Time) (bool, error) {
	if at.IsZero() {
		return false, errs.NewValueIsRequiredError("readAt")
	}

	if n.read {
		return false, nil
	}

	t := at
	n.read = true
	n.readAt = &t
	return true, nil
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	n.userID = id
	return nil
}

func (n *Notification) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryId", err)
	}
	n.deliveryID = id
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	n.createdAt = at
	return nil
}
