// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence. The composed title and message
// travel as one JSON payload column, which keeps the row format stable when
// the dispatch service grows new payload fields.
package notificationrepo

import (
	"encoding/json"
	"time"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDTO represents the database structure for persisting
// notifications. Indexed by user for the listing and unread-count queries.
type NotificationDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;index:idx_notifications_user"`
	DeliveryID uuid.UUID      `gorm:"type:uuid;index"`
	Payload    datatypes.JSON `gorm:"type:jsonb"`
	Read       bool           `gorm:"index:idx_notifications_user"`
	CreatedAt  time.Time
	ReadAt     *time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// payloadDTO is the JSON document stored in the payload column.
type payloadDTO struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// fromDomain converts a notification aggregate to its database representation.
func fromDomain(ntf *notification.Notification) (NotificationDTO, error) {
	payload, err := json.Marshal(payloadDTO{
		Title:   ntf.Title(),
		Message: ntf.Message(),
	})
	if err != nil {
		return NotificationDTO{}, err
	}

	return NotificationDTO{
		ID:         ntf.ID().Bytes(),
		UserID:     ntf.User().Bytes(),
		DeliveryID: ntf.Delivery().Bytes(),
		Payload:    datatypes.JSON(payload),
		Read:       ntf.IsRead(),
		CreatedAt:  ntf.CreatedAt(),
		ReadAt:     ntf.ReadAt(),
	}, nil
}

// toDomain converts a database DTO to a notification aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	var payload payloadDTO
	if err = json.Unmarshal(dto.Payload, &payload); err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		userID,
		deliveryID,
		payload.Title,
		payload.Message,
		dto.CreatedAt,
		dto.Read,
		dto.ReadAt,
	)
}
