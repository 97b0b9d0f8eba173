package queries

import (
	"errors"

	"bloodlink/internal/core/domain/model/blood"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrGetBloodUnitsQueryIsNotConstructed = errors.New(
		"GetBloodUnitsQuery must be created via NewGetBloodUnitsQuery constructor",
	)
)

// GetBloodUnitsQuery lists blood units, optionally narrowed by blood type or
// by the delivery they are reserved for, and optionally restricted to the
// available pool.
type GetBloodUnitsQuery struct {
	bloodType     *blood.Type
	deliveryID    *kernel.UUID
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetBloodUnitsQuery creates a unit listing query. Pass nil for any filter
// to leave it open; onlyAvailable restricts the result to unreserved units.
func NewGetBloodUnitsQuery(
	bloodType *blood.Type,
	deliveryID *kernel.UUID,
	onlyAvailable bool,
) (GetBloodUnitsQuery, error) {
	if bloodType != nil {
		if err := bloodType.Validate(); err != nil {
			return GetBloodUnitsQuery{}, err
		}
	}
	if deliveryID != nil {
		if err := deliveryID.Validate(); err != nil {
			return GetBloodUnitsQuery{}, err
		}
	}

	return GetBloodUnitsQuery{
		bloodType:     bloodType,
		deliveryID:    deliveryID,
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBloodUnitsQuery) Validate() error {
	return q.guard.Validate(ErrGetBloodUnitsQueryIsNotConstructed)
}

// BloodType returns the type filter, or nil.
func (q GetBloodUnitsQuery) BloodType() *blood.Type {
	return q.bloodType
}

// DeliveryID returns the delivery filter, or nil.
func (q GetBloodUnitsQuery) DeliveryID() *kernel.UUID {
	return q.deliveryID
}

// OnlyAvailable reports whether reserved units are excluded.
func (q GetBloodUnitsQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// GetBloodUnitsQueryResponse is the read model for a blood unit in a listing.
type GetBloodUnitsQueryResponse struct {
	ID         kernel.UUID
	BloodType  string
	DeliveryID *kernel.UUID
}
