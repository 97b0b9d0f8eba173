// Package outboxrepo persists status-change events awaiting notification
// dispatch. Events are written in the same transaction as the status update
// that produced them and drained asynchronously by the dispatch job.
package outboxrepo

import (
	"time"

	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for outbox events. The partial
// ordering used by the drain is oldest-unprocessed-first.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"type:varchar(64)"`
	OccurredAt  time.Time `gorm:"index"`
	ProcessedAt *time.Time
}

// TableName specifies the database table name for outbox events.
func (EventDTO) TableName() string {
	return "outbox_events"
}

// fromDomain converts an outbox event to its database representation.
func fromDomain(event *notification.Event) EventDTO {
	return EventDTO{
		ID:          event.ID().Bytes(),
		DeliveryID:  event.Delivery().Bytes(),
		Status:      event.Status().String(),
		OccurredAt:  event.OccurredAt(),
		ProcessedAt: event.ProcessedAt(),
	}
}

// toDomain converts a database DTO to an outbox event.
func toDomain(dto EventDTO) (*notification.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreEvent(
		id,
		deliveryID,
		delivery.Status(dto.Status),
		dto.OccurredAt,
		dto.ProcessedAt,
	)
}
