package commands

import (
	"context"
	"time"
)

// PurgeOutboxCommandHandler deletes processed outbox events past their
// retention window. Runs from a scheduled job; keeps the outbox table from
// growing without bound.
type PurgeOutboxCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewPurgeOutboxCommandHandler creates a handler purging the notification
// outbox.
func NewPurgeOutboxCommandHandler(uowFactory LifecycleUoWFactory) PurgeOutboxCommandHandler {
	return PurgeOutboxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes processed events older than the retention window and
// returns how many rows were removed.
func (h *PurgeOutboxCommandHandler) Handle(ctx context.Context, cmd PurgeOutboxCommand) (int64, error) {
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

	cutoff := time.Now().Add(-cmd.Retention())

	deleted, err := uow.OutboxRepository().DeleteProcessedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
