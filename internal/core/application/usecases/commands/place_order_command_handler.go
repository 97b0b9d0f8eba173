package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
)

// ErrInsufficientInventory is returned when fewer matching available units
// exist than the order requests. The reservation is all-or-nothing: on this
// error no unit changed state and no delivery row exists.
var ErrInsufficientInventory = errors.New("insufficient inventory for requested blood type")

// PlaceOrderResult carries the identifiers produced by a successful
// allocation: the created delivery and the units reserved for it.
type PlaceOrderResult struct {
	DeliveryID kernel.UUID
	UnitIDs    []kernel.UUID
}

// PlaceOrderCommandHandler handles the business logic for order placement:
// it atomically reserves matching inventory and creates the delivery record.
//
// The reservation and the delivery row are one unit of work. Candidate units
// are selected under row locks (see ports.BloodRepository.GetAvailableByType),
// so two concurrent orders for the same type never reserve the same unit; a
// shortfall rolls the whole transaction back.
type PlaceOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an AllocationUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory AllocationUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
//
// Returns ErrInsufficientInventory when fewer than the requested number of
// matching units are available; the returned result is only meaningful when
// err is nil. No notification is emitted on creation: notifications fire on
// status transitions, not on the initial pending state.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bloodRepo := uow.BloodRepository()
	units, err := bloodRepo.GetAvailableByType(ctx, cmd.BloodType(), cmd.Quantity())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if len(units) < cmd.Quantity() {
		return PlaceOrderResult{}, fmt.Errorf("%w: want %d units of %s, found %d",
			ErrInsufficientInventory, cmd.Quantity(), cmd.BloodType(), len(units))
	}

	del, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.HospitalID(),
		cmd.CenterID(),
		cmd.IsUrgent(),
		cmd.Notes(),
		time.Now(),
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.DeliveryRepository().Add(ctx, del); err != nil {
		return PlaceOrderResult{}, err
	}

	unitIDs := make([]kernel.UUID, 0, len(units))
	for _, unit := range units {
		if err = unit.AssignTo(del.ID()); err != nil {
			return PlaceOrderResult{}, err
		}
		if err = bloodRepo.Update(ctx, unit); err != nil {
			return PlaceOrderResult{}, err
		}
		unitIDs = append(unitIDs, unit.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{
		DeliveryID: del.ID(),
		UnitIDs:    unitIDs,
	}, nil
}
