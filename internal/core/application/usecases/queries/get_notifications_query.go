package queries

import (
	"errors"
	"time"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrGetNotificationsQueryIsNotConstructed = errors.New(
		"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
	)
)

// GetNotificationsQuery lists a user's notifications, newest first.
type GetNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a notification listing query for the
// given user. Set unreadOnly to exclude acknowledged notifications.
func NewGetNotificationsQuery(userID kernel.UUID, unreadOnly bool) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the recipient whose notifications are listed.
func (q GetNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

// UnreadOnly reports whether acknowledged notifications are excluded.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// GetNotificationsQueryResponse is the read model for one notification.
type GetNotificationsQueryResponse struct {
	ID         kernel.UUID
	DeliveryID kernel.UUID
	Title      string
	Message    string
	Read       bool
	CreatedAt  time.Time
	ReadAt     *time.Time
}
