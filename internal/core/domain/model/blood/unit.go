package blood

import (
	"errors"
	"fmt"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"
	"bloodlink/internal/pkg/guard"
)

var (
	// ErrUnitIsNotConstructed is returned when a Unit instance was not created
	// through the NewUnit factory method.
	ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit constructor")

	// ErrUnitAlreadyAssigned is returned when assigning a unit that already
	// belongs to a delivery.
	ErrUnitAlreadyAssigned = errors.New("blood unit is already assigned to a delivery")

	// ErrUnitNotAssigned is returned when releasing a unit that has no
	// delivery assignment.
	ErrUnitNotAssigned = errors.New("blood unit is not assigned to a delivery")
)

// Unit represents one inventory item of a given blood type. It is an
// aggregate root mutated only by order allocation (AssignTo) and cancellation
// (Release).
//
// Unit follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid blood type
//   - Is available if and only if its delivery assignment is nil
//   - Can only be created through the NewUnit constructor
//
// The version field backs optimistic concurrency control: each successful
// mutation observed by the persistence layer advances it by one, and a write
// against a stale version fails with errs.ErrVersionConflict.
type Unit struct {
	id kernel.UUID

	// bloodType is the unit's ABO/Rh category
	bloodType Type

	// deliveryID is the owning delivery (nil when the unit is available)
	deliveryID *kernel.UUID

	// version is the optimistic concurrency token managed by persistence
	version int

	guard guard.ConstructorGuard
}

// NewUnit creates a new available Unit of the given type. This is the only
// way to create a valid Unit for inventory intake.
func NewUnit(id kernel.UUID, bloodType Type) (*Unit, error) {
	unit := &Unit{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		unit.setID(id),
		unit.setType(bloodType),
	); err != nil {
		return nil, err
	}

	return unit, nil
}

// RestoreUnit reconstructs a Unit from persistence, including its delivery
// assignment and version. Used by repository implementations only.
func RestoreUnit(id kernel.UUID, bloodType Type, deliveryID *kernel.UUID, version int) (*Unit, error) {
	unit, err := NewUnit(id, bloodType)
	if err != nil {
		return nil, err
	}

	if deliveryID != nil {
		if err = deliveryID.Validate(); err != nil {
			return nil, err
		}
		unit.deliveryID = deliveryID
	}

	if version < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}
	unit.version = version

	return unit, nil
}

// Validate ensures the Unit instance was properly constructed through NewUnit.
func (u *Unit) Validate() error {
	if u == nil {
		return ErrUnitIsNotConstructed
	}
	return u.guard.Validate(ErrUnitIsNotConstructed)
}

// IsEqual compares two units by their unique identifiers.
func (u *Unit) IsEqual(other *Unit) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the unit's unique identifier.
func (u *Unit) ID() kernel.UUID {
	return u.id
}

// BloodType returns the unit's ABO/Rh category.
func (u *Unit) BloodType() Type {
	return u.bloodType
}

// Delivery returns the owning delivery's ID, or nil when the unit is available.
func (u *Unit) Delivery() *kernel.UUID {
	return u.deliveryID
}

// Version returns the optimistic concurrency token loaded from persistence.
func (u *Unit) Version() int {
	return u.version
}

// IsAvailable reports whether the unit can be reserved for a new order.
// A unit is available if and only if it has no delivery assignment.
func (u *Unit) IsAvailable() bool {
	return u.deliveryID == nil
}

// AssignTo reserves the unit for the given delivery.
//
// Business rules:
//   - The delivery ID must be valid
//   - The unit must be available; double assignment fails with
//     ErrUnitAlreadyAssigned
func (u *Unit) AssignTo(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	if u.deliveryID != nil {
		return ErrUnitAlreadyAssigned
	}

	id := deliveryID
	u.deliveryID = &id
	return nil
}

// Release returns the unit to the available pool. Fails with
// ErrUnitNotAssigned when the unit has no delivery assignment.
func (u *Unit) Release() error {
	if u.deliveryID == nil {
		return ErrUnitNotAssigned
	}

	u.deliveryID = nil
	return nil
}

func (u *Unit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *Unit) setType(bloodType Type) error {
	if err := bloodType.Validate(); err != nil {
		return err
	}
	u.bloodType = bloodType
	return nil
}
