package commands

import (
	"errors"
	"fmt"

	"bloodlink/internal/core/domain/model/blood"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request for N units of a blood type at a
// hospital. It is the transient order request: it exists only for the
// duration of the place-order operation and is never persisted itself.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(deliveryID, hospitalID, centerID, blood.BNegative, 2, true, "trauma ward")
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrInsufficientInventory) {
//	    // fewer than 2 available B- units; nothing was reserved
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	hospitalID kernel.UUID
	centerID   kernel.UUID
	bloodType  blood.Type
	quantity   int
	urgent     bool
	notes      string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new blood order.
// Validates that all ids are valid, the blood type is one of the eight
// recognized categories, and the quantity is positive. Returns an error if
// any validation fails; no persistence is touched on the failure path.
func NewPlaceOrderCommand(
	deliveryID kernel.UUID,
	hospitalID kernel.UUID,
	centerID kernel.UUID,
	bloodType blood.Type,
	quantity int,
	urgent bool,
	notes string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		urgent: urgent,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setHospitalID(hospitalID),
		cmd.setCenterID(centerID),
		cmd.setBloodType(bloodType),
		cmd.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// DeliveryID returns the identifier the new delivery will be created under.
func (c PlaceOrderCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// HospitalID returns the requesting hospital's identifier.
func (c PlaceOrderCommand) HospitalID() kernel.UUID {
	return c.hospitalID
}

// CenterID returns the fulfilling donation center's identifier.
func (c PlaceOrderCommand) CenterID() kernel.UUID {
	return c.centerID
}

// BloodType returns the requested ABO/Rh category.
func (c PlaceOrderCommand) BloodType() blood.Type {
	return c.bloodType
}

// Quantity returns the number of units requested.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// IsUrgent returns the urgency flag.
func (c PlaceOrderCommand) IsUrgent() bool {
	return c.urgent
}

// Notes returns the optional free-text notes.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *PlaceOrderCommand) setHospitalID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("hospitalId", err)
	}
	c.hospitalID = id
	return nil
}

func (c *PlaceOrderCommand) setCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("centerId", err)
	}
	c.centerID = id
	return nil
}

func (c *PlaceOrderCommand) setBloodType(bloodType blood.Type) error {
	if err := bloodType.Validate(); err != nil {
		return err
	}
	c.bloodType = bloodType
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
