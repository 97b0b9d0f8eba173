package notification

import (
	"errors"
	"time"

	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"
	"bloodlink/internal/pkg/guard"
)

var (
	// ErrEventIsNotConstructed is returned when an Event instance was not
	// created through the NewEvent factory method.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

	// ErrEventAlreadyProcessed is returned when marking an event processed a
	// second time.
	ErrEventAlreadyProcessed = errors.New("event has already been processed")
)

// Event is an outbox record of a delivery status change. It is written in the
// same transaction as the status update, so a committed status change always
// leaves an event behind, and drained asynchronously by the notification
// dispatch job. A failure while draining leaves the event unprocessed for
// retry and never affects the status update that produced it.
type Event struct {
	id         kernel.UUID
	deliveryID kernel.UUID

	// status is the lifecycle tag the delivery transitioned into
	status delivery.Status

	occurredAt  time.Time
	processedAt *time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates an unprocessed status-change event.
func NewEvent(
	id kernel.UUID,
	deliveryID kernel.UUID,
	status delivery.Status,
	occurredAt time.Time,
) (*Event, error) {
	e := &Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setDeliveryID(deliveryID),
		e.setStatus(status),
		e.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEvent reconstructs an Event from persistence.
// Used by repository implementations only.
func RestoreEvent(
	id kernel.UUID,
	deliveryID kernel.UUID,
	status delivery.Status,
	occurredAt time.Time,
	processedAt *time.Time,
) (*Event, error) {
	e, err := NewEvent(id, deliveryID, status, occurredAt)
	if err != nil {
		return nil, err
	}

	e.processedAt = processedAt

	return e, nil
}

// Validate ensures the Event was properly constructed.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// Delivery returns the delivery whose status changed.
func (e *Event) Delivery() kernel.UUID {
	return e.deliveryID
}

// Status returns the lifecycle tag the delivery transitioned into.
func (e *Event) Status() delivery.Status {
	return e.status
}

// OccurredAt returns when the status change was committed.
func (e *Event) OccurredAt() time.Time {
	return e.occurredAt
}

// ProcessedAt returns when the dispatch job drained the event, or nil.
func (e *Event) ProcessedAt() *time.Time {
	return e.processedAt
}

// IsProcessed reports whether the event has already been drained.
func (e *Event) IsProcessed() bool {
	return e.processedAt != nil
}

// MarkProcessed records that the dispatch job drained this event.
func (e *Event) MarkProcessed(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("processedAt")
	}

	if e.processedAt != nil {
		return ErrEventAlreadyProcessed
	}

	t := at
	e.processedAt = &t
	return nil
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryId", err)
	}
	e.deliveryID = id
	return nil
}

func (e *Event) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Event) setOccurredAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	e.occurredAt = at
	return nil
}
