package queries

import (
	"errors"
	"time"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrGetDeliveriesQueryIsNotConstructed = errors.New(
		"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
	)
)

// GetDeliveriesQuery retrieves deliveries, optionally narrowed to one drone,
// hospital or center. Filters combine with AND; a query with no filters
// returns every delivery.
type GetDeliveriesQuery struct {
	droneID    *kernel.UUID
	hospitalID *kernel.UUID
	centerID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a delivery listing query. Pass nil for any
// filter to leave it open.
func NewGetDeliveriesQuery(
	droneID *kernel.UUID,
	hospitalID *kernel.UUID,
	centerID *kernel.UUID,
) (GetDeliveriesQuery, error) {
	for _, id := range []*kernel.UUID{droneID, hospitalID, centerID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}

	return GetDeliveriesQuery{
		droneID:    droneID,
		hospitalID: hospitalID,
		centerID:   centerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// DroneID returns the drone filter, or nil.
func (q GetDeliveriesQuery) DroneID() *kernel.UUID {
	return q.droneID
}

// HospitalID returns the hospital filter, or nil.
func (q GetDeliveriesQuery) HospitalID() *kernel.UUID {
	return q.hospitalID
}

// CenterID returns the center filter, or nil.
func (q GetDeliveriesQuery) CenterID() *kernel.UUID {
	return q.centerID
}

// GetDeliveriesQueryResponse is the read model for a delivery in a listing.
// Unit ids are omitted; use GetDeliveryQuery for the singular view.
type GetDeliveriesQueryResponse struct {
	ID          kernel.UUID
	DroneID     *kernel.UUID
	HospitalID  kernel.UUID
	CenterID    kernel.UUID
	Urgent      bool
	Notes       string
	RequestedAt time.Time
	ValidatedAt *time.Time
	Status      string
}
