package delivery

import (
	"errors"
	"time"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"
	"bloodlink/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery factory method.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDeliveryNotCancellable is returned when cancelling a delivery that
	// has already left the pending status.
	ErrDeliveryNotCancellable = errors.New("only pending deliveries can be cancelled")
)

// Delivery represents one blood-transport request and its lifecycle. It is
// the aggregate root created by a successful allocation and destroyed only
// when cancelled while still pending; otherwise it persists through terminal
// states for audit.
//
// Delivery follows these invariants:
//   - Must have valid unique, hospital, and donation-center identifiers
//   - Starts in the Pending status
//   - Status is always a non-empty value
//   - Can only be created through NewDelivery
//
// The assigned blood units are owned 1:N through each unit's delivery
// reference; the aggregate itself carries only the delivery-side state.
type Delivery struct {
	id kernel.UUID

	// droneID is the assigned drone (nil until dispatch)
	droneID *kernel.UUID

	hospitalID kernel.UUID
	centerID   kernel.UUID

	urgent bool
	notes  string

	requestedAt time.Time

	// validatedAt is set when the center validates the fulfillment
	validatedAt *time.Time

	status Status

	guard guard.ConstructorGuard
}

// NewDelivery creates a new Delivery in the Pending status.
//
// Parameters:
//   - id: unique identifier for the delivery
//   - hospitalID: the requesting hospital
//   - centerID: the donation center fulfilling the order
//   - urgent: urgency flag from the order request
//   - notes: optional free-text notes from the order request
//   - requestedAt: when the order was placed (must be non-zero)
func NewDelivery(
	id kernel.UUID,
	hospitalID kernel.UUID,
	centerID kernel.UUID,
	urgent bool,
	notes string,
	requestedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		urgent: urgent,
		notes:  notes,
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setHospitalID(hospitalID),
		d.setCenterID(centerID),
		d.setRequestedAt(requestedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, including status,
// drone assignment, and timestamps. Used by repository implementations only.
func RestoreDelivery(
	id kernel.UUID,
	hospitalID kernel.UUID,
	centerID kernel.UUID,
	urgent bool,
	notes string,
	requestedAt time.Time,
	validatedAt *time.Time,
	status Status,
	droneID *kernel.UUID,
) (*Delivery, error) {
	d, err := NewDelivery(id, hospitalID, centerID, urgent, notes, requestedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status

	if droneID != nil {
		if err = droneID.Validate(); err != nil {
			return nil, err
		}
		d.droneID = droneID
	}

	d.validatedAt = validatedAt

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed through
// NewDelivery. Call when reconstructing deliveries from persistence.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Drone returns the assigned drone's ID, or nil before dispatch.
func (d *Delivery) Drone() *kernel.UUID {
	return d.droneID
}

// Hospital returns the requesting hospital's ID.
func (d *Delivery) Hospital() kernel.UUID {
	return d.hospitalID
}

// Center returns the fulfilling donation center's ID.
func (d *Delivery) Center() kernel.UUID {
	return d.centerID
}

// IsUrgent returns the urgency flag from the order request.
func (d *Delivery) IsUrgent() bool {
	return d.urgent
}

// Notes returns the free-text notes from the order request.
func (d *Delivery) Notes() string {
	return d.notes
}

// RequestedAt returns when the order was placed.
func (d *Delivery) RequestedAt() time.Time {
	return d.requestedAt
}

// ValidatedAt returns the center validation timestamp, or nil.
func (d *Delivery) ValidatedAt() *time.Time {
	return d.validatedAt
}

// Status returns the delivery's current lifecycle tag.
func (d *Delivery) Status() Status {
	return d.status
}

// CanCancel reports whether the delivery may still be cancelled.
// Only pending deliveries are cancellable; cancellation deletes the record
// and releases its inventory.
func (d *Delivery) CanCancel() bool {
	return d.status.IsPending()
}

// ChangeStatus moves the delivery to the given status.
//
// Returns true when the status actually changed; a transition to the status
// the delivery already holds is a no-op reported as false, so callers know
// not to fan out notifications for it.
func (d *Delivery) ChangeStatus(newStatus Status) (bool, error) {
	if err := newStatus.Validate(); err != nil {
		return false, err
	}

	if d.status == newStatus {
		return false, nil
	}

	d.status = newStatus
	return true, nil
}

// AssignDrone attaches a drone to the delivery. Reassignment is allowed; the
// operational workflow owns the policy of when a drone swap makes sense.
func (d *Delivery) AssignDrone(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	id := droneID
	d.droneID = &id
	return nil
}

// MarkValidated records when the center validated the fulfillment.
func (d *Delivery) MarkValidated(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("validatedAt")
	}

	t := at
	d.validatedAt = &t
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setHospitalID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("hospitalId", err)
	}
	d.hospitalID = id
	return nil
}

func (d *Delivery) setCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("centerId", err)
	}
	d.centerID = id
	return nil
}

func (d *Delivery) setRequestedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("requestedAt")
	}
	d.requestedAt = at
	return nil
}
