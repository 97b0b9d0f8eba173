package commands

import (
	"errors"

	"bloodlink/internal/pkg/errs"
	"bloodlink/internal/pkg/guard"
)

const (
	minDispatchBatchSize = 1
	maxDispatchBatchSize = 500
)

var (
	ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
		"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
	)
)

// DispatchNotificationsCommand represents one drain pass over the outbox.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a drain command processing at most
// batchSize events.
func NewDispatchNotificationsCommand(batchSize int) (DispatchNotificationsCommand, error) {
	if batchSize < minDispatchBatchSize || batchSize > maxDispatchBatchSize {
		return DispatchNotificationsCommand{}, errs.NewValueIsOutOfRangeError(
			"batchSize", batchSize, minDispatchBatchSize, maxDispatchBatchSize)
	}

	return DispatchNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of events to process in this pass.
func (c DispatchNotificationsCommand) BatchSize() int {
	return c.batchSize
}
