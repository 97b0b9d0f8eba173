package queries

import (
	"errors"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/guard"
)

var (
	ErrGetBloodUnitQueryIsNotConstructed = errors.New(
		"GetBloodUnitQuery must be created via NewGetBloodUnitQuery constructor",
	)
)

// GetBloodUnitQuery retrieves a single blood unit by id.
type GetBloodUnitQuery struct {
	unitID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBloodUnitQuery creates a query for the given unit.
func NewGetBloodUnitQuery(unitID kernel.UUID) (GetBloodUnitQuery, error) {
	if err := unitID.Validate(); err != nil {
		return GetBloodUnitQuery{}, err
	}

	return GetBloodUnitQuery{
		unitID: unitID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBloodUnitQuery) Validate() error {
	return q.guard.Validate(ErrGetBloodUnitQueryIsNotConstructed)
}

// UnitID returns the unit to look up.
func (q GetBloodUnitQuery) UnitID() kernel.UUID {
	return q.unitID
}

// GetBloodUnitQueryResponse is the read model for a blood unit. DeliveryID is
// nil while the unit sits in the available pool.
type GetBloodUnitQueryResponse struct {
	ID         kernel.UUID
	BloodType  string
	DeliveryID *kernel.UUID
}
