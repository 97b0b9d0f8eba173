package services

import (
	"errors"
	"fmt"
	"time"

	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/core/domain/model/notification"
)

// ErrEventDeliveryMismatch is returned when the event being dispatched does
// not belong to the delivery it was paired with.
var ErrEventDeliveryMismatch = errors.New("event does not belong to the given delivery")

// AlertDispatcher is a domain service that turns one delivery status change
// into the set of notifications it owes.
//
// Business rules:
//   - Every status change reaches the hospital's admin and staff users
//   - Center-facing events (center acceptance, failure) additionally reach
//     the donation center's users
//   - Each resolved recipient gets exactly one unread notification, even when
//     listed on both sides
//   - Title and message are derived from the event kind and delivery context
//
// Example usage:
//
//	dispatcher := services.NewAlertDispatcher()
//	alerts, err := dispatcher.Dispatch(del, event, hospitalStaff, centerStaff, time.Now())
//	if err != nil {
//	    // event/delivery pair was inconsistent
//	}
//	// persist alerts, one row per recipient
type AlertDispatcher struct{}

// NewAlertDispatcher creates a new AlertDispatcher instance.
func NewAlertDispatcher() AlertDispatcher {
	return AlertDispatcher{}
}

// Dispatch composes one notification per resolved recipient of the event.
//
// Parameters:
//   - del: the delivery whose status changed (must be valid)
//   - event: the status-change event being drained
//   - hospitalStaff: role-scoped users of the delivery's hospital
//   - centerStaff: role-scoped users of the delivery's donation center
//   - now: creation timestamp for the composed notifications
//
// Returns the notifications to persist; an empty slice when no recipients
// resolve. Recipients appearing in both lists are deduplicated.
func (AlertDispatcher) Dispatch(
	del *delivery.Delivery,
	event *notification.Event,
	hospitalStaff []kernel.UUID,
	centerStaff []kernel.UUID,
	now time.Time,
) ([]*notification.Notification, error) {
	if err := del.Validate(); err != nil {
		return nil, err
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if !event.Delivery().IsEqual(del.ID()) {
		return nil, ErrEventDeliveryMismatch
	}

	recipients := make([]kernel.UUID, 0, len(hospitalStaff)+len(centerStaff))
	seen := make(map[kernel.UUID]bool, len(hospitalStaff)+len(centerStaff))

	appendRecipients := func(users []kernel.UUID) {
		for _, u := range users {
			if u.Validate() != nil || seen[u] {
				continue
			}
			seen[u] = true
			recipients = append(recipients, u)
		}
	}

	appendRecipients(hospitalStaff)
	if event.Status().IsCenterFacing() {
		appendRecipients(centerStaff)
	}

	title := composeTitle(event.Status())
	message := composeMessage(del, event.Status())

	alerts := make([]*notification.Notification, 0, len(recipients))
	for _, userID := range recipients {
		alert, err := notification.NewNotification(
			kernel.NewUUID(), userID, del.ID(), title, message, now)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

// composeTitle maps well-known lifecycle tags to human-readable headlines;
// operational pass-through statuses get a generic one.
func composeTitle(status delivery.Status) string {
	switch status {
	case delivery.AcceptedCenter:
		return "Delivery accepted by donation center"
	case delivery.Delivered:
		return "Delivery completed"
	case delivery.Failed:
		return "Delivery failed"
	default:
		return fmt.Sprintf("Delivery status changed to %s", status)
	}
}

func composeMessage(del *delivery.Delivery, status delivery.Status) string {
	urgency := "regular"
	if del.IsUrgent() {
		urgency = "urgent"
	}
	return fmt.Sprintf("Delivery %s (%s) is now %s", del.ID(), urgency, status)
}
