package commands

import (
	"context"

	"bloodlink/internal/core/domain/model/delivery"
)

// CancelOrderCommandHandler handles cancellation of pending deliveries.
//
// The delivery row is locked for the duration of the transaction so a
// concurrent status update cannot race the cancellation. Every unit reserved
// for the delivery is released back to the pool and the delivery record is
// removed, all atomically.
type CancelOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory AllocationUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
//
// Returns errs.ObjectNotFoundError when the delivery does not exist and
// delivery.ErrDeliveryNotCancellable when it has already left the pending
// state. On any error the transaction rolls back and the reservation stays
// intact.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	del, err := uow.DeliveryRepository().GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if !del.CanCancel() {
		return delivery.ErrDeliveryNotCancellable
	}

	bloodRepo := uow.BloodRepository()
	units, err := bloodRepo.GetByDelivery(ctx, del.ID())
	if err != nil {
		return err
	}

	for _, unit := range units {
		if err = unit.Release(); err != nil {
			return err
		}
		if err = bloodRepo.Update(ctx, unit); err != nil {
			return err
		}
	}

	if err = uow.DeliveryRepository().Delete(ctx, del.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
