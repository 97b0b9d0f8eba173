package commands

import (
	"context"
	"time"

	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/core/domain/model/notification"
)

// UpdateStatusResult reports the outcome of a status update.
type UpdateStatusResult struct {
	Status delivery.Status
	// Changed is false when the delivery already held the requested status;
	// no outbox event was written in that case.
	Changed bool
}

// UpdateStatusCommandHandler moves a delivery through its lifecycle.
//
// The status change and its outbox event commit in one transaction, so
// notification fan-out (done asynchronously by the dispatch job) can never
// observe a status the database does not hold. The delivery row is locked so
// concurrent updates and cancellations serialize.
type UpdateStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewUpdateStatusCommandHandler creates a handler for status updates.
func NewUpdateStatusCommandHandler(uowFactory LifecycleUoWFactory) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status-update command.
//
// A transition to the status the delivery already holds succeeds without
// writing an outbox event (Changed=false). Unknown non-empty statuses are
// accepted and stored as-is.
func (h *UpdateStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateStatusCommand,
) (UpdateStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	del, err := uow.DeliveryRepository().GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return UpdateStatusResult{}, err
	}

	changed, err := del.ChangeStatus(cmd.Status())
	if err != nil {
		return UpdateStatusResult{}, err
	}

	if droneID := cmd.DroneID(); droneID != nil {
		if err = del.AssignDrone(*droneID); err != nil {
			return UpdateStatusResult{}, err
		}
	}

	if validatedAt := cmd.ValidatedAt(); validatedAt != nil {
		if err = del.MarkValidated(*validatedAt); err != nil {
			return UpdateStatusResult{}, err
		}
	}

	if err = uow.DeliveryRepository().Update(ctx, del); err != nil {
		return UpdateStatusResult{}, err
	}

	if changed {
		event, err := notification.NewEvent(kernel.NewUUID(), del.ID(), del.Status(), time.Now())
		if err != nil {
			return UpdateStatusResult{}, err
		}

		if err = uow.OutboxRepository().Add(ctx, event); err != nil {
			return UpdateStatusResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateStatusResult{}, err
	}

	return UpdateStatusResult{
		Status:  del.Status(),
		Changed: changed,
	}, nil
}
