package queries

import (
	"errors"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrGetUnreadCountQueryIsNotConstructed = errors.New(
		"GetUnreadCountQuery must be created via NewGetUnreadCountQuery constructor",
	)
)

// GetUnreadCountQuery counts a user's unread notifications. Backs the badge
// on the client without shipping the notification list.
type GetUnreadCountQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnreadCountQuery creates an unread-count query for the given user.
func NewGetUnreadCountQuery(userID kernel.UUID) (GetUnreadCountQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUnreadCountQuery{}, err
	}

	return GetUnreadCountQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnreadCountQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadCountQueryIsNotConstructed)
}

// UserID returns the recipient whose unread notifications are counted.
func (q GetUnreadCountQuery) UserID() kernel.UUID {
	return q.userID
}
