package commands

import (
	"errors"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
		"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
	)
)

// MarkAllNotificationsReadCommand represents a recipient acknowledging every
// unread notification they hold.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a bulk read-acknowledgment command.
func NewMarkAllNotificationsReadCommand(userID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	if err := userID.Validate(); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return MarkAllNotificationsReadCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// UserID returns the acknowledging recipient.
func (c MarkAllNotificationsReadCommand) UserID() kernel.UUID {
	return c.userID
}
