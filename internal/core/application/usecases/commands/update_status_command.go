package commands

import (
	"errors"
	"time"

	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrUpdateStatusCommandIsNotConstructed = errors.New(
		"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
	)
)

// UpdateStatusCommand represents a request to move a delivery to a new
// lifecycle status, optionally attaching the drone flying it and the moment
// the donation center validated the fulfillment.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	status      delivery.Status
	droneID     *kernel.UUID
	validatedAt *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a status-update command. droneID and
// validatedAt are optional; pass nil to leave the corresponding delivery
// fields untouched.
func NewUpdateStatusCommand(
	deliveryID kernel.UUID,
	status delivery.Status,
	droneID *kernel.UUID,
	validatedAt *time.Time,
) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(status),
		cmd.setDroneID(droneID),
		cmd.setValidatedAt(validatedAt),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery to update.
func (c UpdateStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the target status.
func (c UpdateStatusCommand) Status() delivery.Status {
	return c.status
}

// DroneID returns the drone to attach, or nil.
func (c UpdateStatusCommand) DroneID() *kernel.UUID {
	return c.droneID
}

// ValidatedAt returns the center validation time, or nil.
func (c UpdateStatusCommand) ValidatedAt() *time.Time {
	return c.validatedAt
}

func (c *UpdateStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *UpdateStatusCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateStatusCommand) setDroneID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}

	if err := id.Validate(); err != nil {
		return err
	}

	v := *id
	c.droneID = &v
	return nil
}

func (c *UpdateStatusCommand) setValidatedAt(at *time.Time) error {
	if at == nil {
		return nil
	}

	if at.IsZero() {
		return errs.NewValueIsRequiredError("validatedAt")
	}

	t := *at
	c.validatedAt = &t
	return nil
}
