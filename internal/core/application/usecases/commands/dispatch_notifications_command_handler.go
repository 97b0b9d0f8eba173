package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/core/domain/model/notification"
	"bloodlink/internal/core/domain/services"
	"bloodlink/internal/core/ports"
	"bloodlink/internal/pkg/errs"
)

// DispatchNotificationsCommandHandler drains the outbox: for every
// unprocessed status-change event it resolves the recipients through the user
// directory, composes their notifications and marks the event processed.
//
// The whole batch runs in one transaction with the outbox rows locked under
// SKIP LOCKED, so overlapping drain passes work disjoint batches. An event
// whose recipients cannot be resolved is skipped and retried on the next
// pass; an event whose delivery no longer exists (cancelled before dispatch)
// is marked processed without fan-out.
type DispatchNotificationsCommandHandler struct {
	uowFactory    DispatchUoWFactory
	userDirectory ports.UserDirectory
	dispatcher    services.AlertDispatcher
	logger        *slog.Logger
}

// NewDispatchNotificationsCommandHandler creates a handler draining the
// notification outbox.
func NewDispatchNotificationsCommandHandler(
	uowFactory DispatchUoWFactory,
	userDirectory ports.UserDirectory,
	dispatcher services.AlertDispatcher,
	logger *slog.Logger,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory:    uowFactory,
		userDirectory: userDirectory,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// Handle processes one drain pass and returns how many events were marked
// processed. Per-event failures are logged and leave the event unprocessed
// for the next pass; only batch-level failures surface as errors.
func (h *DispatchNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchNotificationsCommand,
) (int, error) {
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

	events, err := uow.OutboxRepository().GetUnprocessed(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, event := range events {
		ok, err := h.processEvent(ctx, uow, event)
		if err != nil {
			return 0, err
		}
		if ok {
			processed++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return processed, nil
}

// processEvent fans one event out. Returns false when the event was skipped
// for retry. Errors returned here abort the whole batch; recipient and
// composition failures are downgraded to a skip.
func (h *DispatchNotificationsCommandHandler) processEvent(
	ctx context.Context,
	uow DispatchUoW,
	event *notification.Event,
) (bool, error) {
	del, err := uow.DeliveryRepository().Get(ctx, event.Delivery())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			// delivery cancelled between the status update and this pass
			if err = event.MarkProcessed(time.Now()); err != nil {
				return false, err
			}
			return true, uow.OutboxRepository().Update(ctx, event)
		}
		return false, err
	}

	hospitalStaff, err := h.userDirectory.HospitalStaff(ctx, del.Hospital())
	if err != nil {
		h.logger.Warn("resolve hospital staff failed, event left for retry",
			"event_id", event.ID(), "hospital_id", del.Hospital(), "error", err)
		return false, nil
	}

	var centerStaff []kernel.UUID
	if event.Status().IsCenterFacing() {
		centerStaff, err = h.userDirectory.CenterStaff(ctx, del.Center())
		if err != nil {
			h.logger.Warn("resolve center staff failed, event left for retry",
				"event_id", event.ID(), "center_id", del.Center(), "error", err)
			return false, nil
		}
	}

	notifications, err := h.dispatcher.Dispatch(del, event, hospitalStaff, centerStaff, time.Now())
	if err != nil {
		h.logger.Warn("notification composition failed, event left for retry",
			"event_id", event.ID(), "error", err)
		return false, nil
	}

	for _, ntf := range notifications {
		if err = uow.NotificationRepository().Add(ctx, ntf); err != nil {
			return false, err
		}
	}

	if err = event.MarkProcessed(time.Now()); err != nil {
		return false, err
	}

	return true, uow.OutboxRepository().Update(ctx, event)
}
