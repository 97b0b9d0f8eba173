package queries

import (
	"context"
	"database/sql"

	"bloodlink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler lists a user's notifications.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification listing
// queries. Requires a GORM database connection for query execution.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the listing, newest first. An empty result is a valid
// response, never an error.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetNotificationsQueryResponse, 0)

	sqlQuery := `
		SELECT
			id,
			delivery_id,
			payload->>'title',
			payload->>'message',
			read,
			created_at,
			read_at
		FROM notifications
		WHERE user_id = ?
	`
	if query.UnreadOnly() {
		sqlQuery += " AND read = false"
	}
	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp       GetNotificationsQueryResponse
			id         uuid.UUID
			deliveryID uuid.UUID
			readAt     sql.NullTime
		)

		err = rows.Scan(
			&id,
			&deliveryID,
			&resp.Title,
			&resp.Message,
			&resp.Read,
			&resp.CreatedAt,
			&readAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DeliveryID, err = kernel.UUIDFromBytes(deliveryID[:]); err != nil {
			return nil, err
		}
		if readAt.Valid {
			t := readAt.Time
			resp.ReadAt = &t
		}

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
