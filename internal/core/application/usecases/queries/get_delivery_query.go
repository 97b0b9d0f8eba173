// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS pattern: handlers read through raw
// SQL projections instead of loading aggregates, keeping the read path free
// of domain invariant checks.
package queries

import (
	"errors"
	"time"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
)

// GetDeliveryQuery retrieves a single delivery with the blood units reserved
// for it.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for the given delivery.
func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the delivery to look up.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetDeliveryQueryResponse is the read model for a single delivery, including
// the ids of the units reserved for it.
type GetDeliveryQueryResponse struct {
	ID          kernel.UUID
	DroneID     *kernel.UUID
	HospitalID  kernel.UUID
	CenterID    kernel.UUID
	Urgent      bool
	Notes       string
	RequestedAt time.Time
	ValidatedAt *time.Time
	Status      string
	UnitIDs     []kernel.UUID
}
