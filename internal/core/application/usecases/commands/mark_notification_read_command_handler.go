package commands

import (
	"context"
	"time"
)

// MarkNotificationReadCommandHandler acknowledges a single notification on
// behalf of its recipient. Re-acknowledging an already read notification
// succeeds and keeps the original read time.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for single-notification
// read acknowledgment.
func NewMarkNotificationReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgment.
//
// Returns errs.ObjectNotFoundError when the notification does not exist or
// belongs to a different user; the two cases are indistinguishable to the
// caller.
func (h *MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	ntf, err := repo.GetForUser(ctx, cmd.NotificationID(), cmd.UserID())
	if err != nil {
		return err
	}

	changed, err := ntf.MarkRead(time.Now())
	if err != nil {
		return err
	}

	if changed {
		if err = repo.Update(ctx, ntf); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
