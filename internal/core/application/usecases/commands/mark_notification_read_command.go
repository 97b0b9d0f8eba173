package commands

import (
	"errors"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
		"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
	)
)

// MarkNotificationReadCommand represents a recipient acknowledging one
// notification. The user scope guards against acknowledging somebody else's
// notification by guessing its id.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a read-acknowledgment command.
func NewMarkNotificationReadCommand(
	notificationID kernel.UUID,
	userID kernel.UUID,
) (MarkNotificationReadCommand, error) {
	if err := errors.Join(
		notificationID.Validate(),
		userID.Validate(),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return MarkNotificationReadCommand{
		notificationID: notificationID,
		userID:         userID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification to acknowledge.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// UserID returns the acknowledging recipient.
func (c MarkNotificationReadCommand) UserID() kernel.UUID {
	return c.userID
}
