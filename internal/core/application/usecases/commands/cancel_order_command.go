package commands

import (
	"errors"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel a pending blood order,
// releasing its reserved units back to the available pool and deleting the
// delivery record.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the given delivery.
func NewCancelOrderCommand(deliveryID kernel.UUID) (CancelOrderCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// DeliveryID returns the delivery to cancel.
func (c CancelOrderCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
