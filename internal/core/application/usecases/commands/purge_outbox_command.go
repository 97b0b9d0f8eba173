package commands

import (
	"errors"
	"time"

	"bloodlink/internal/pkg/errs"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrPurgeOutboxCommandIsNotConstructed = errors.New(
		"PurgeOutboxCommand must be created via NewPurgeOutboxCommand constructor",
	)
)

// PurgeOutboxCommand represents a request to delete processed outbox events
// older than the retention window. Unprocessed events are never touched.
type PurgeOutboxCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeOutboxCommand creates a purge command with the given retention
// window. The retention must be positive.
func NewPurgeOutboxCommand(retention time.Duration) (PurgeOutboxCommand, error) {
	if retention <= 0 {
		return PurgeOutboxCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, 1, nil)
	}

	return PurgeOutboxCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOutboxCommandIsNotConstructed)
}

// Retention returns how long processed events are kept before deletion.
func (c PurgeOutboxCommand) Retention() time.Duration {
	return c.retention
}
