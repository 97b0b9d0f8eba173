package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnreadCountQueryHandler counts unread notifications for a user.
type GetUnreadCountQueryHandler struct {
	db *gorm.DB
}

// NewGetUnreadCountQueryHandler creates a handler for unread-count queries.
// Requires a GORM database connection for query execution.
func NewGetUnreadCountQueryHandler(db *gorm.DB) GetUnreadCountQueryHandler {
	return GetUnreadCountQueryHandler{db: db}
}

// Handle executes the count. A user with no notifications yields zero.
func (h GetUnreadCountQueryHandler) Handle(
	ctx context.Context,
	query GetUnreadCountQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = ? AND read = false
	`, query.UserID().Bytes()).Row()

	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
