package commands

import (
	"context"
	"time"
)

// MarkAllNotificationsReadCommandHandler acknowledges every unread
// notification of a user in a single statement. Running it twice is harmless;
// the second run reports zero updated rows.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for bulk read
// acknowledgment.
func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk acknowledgment and returns the number of
// notifications that changed from unread to read.
func (h *MarkAllNotificationsReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAllNotificationsReadCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.NotificationRepository().MarkAllRead(ctx, cmd.UserID(), time.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
