// Package bloodrepo provides data transfer objects and mapping functions for
// blood unit persistence. Implements the repository pattern for the blood
// unit aggregate, converting between domain entities and database rows.
package bloodrepo

import (
	"bloodlink/internal/core/domain/model/blood"
	"bloodlink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UnitDTO represents the database structure for persisting blood units.
// The composite index on (blood_type, delivery_id) serves the candidate
// selection of the allocation path; version backs the optimistic lock.
type UnitDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BloodType  string     `gorm:"type:varchar(3);index:idx_blood_units_pool"`
	DeliveryID *uuid.UUID `gorm:"type:uuid;index:idx_blood_units_pool"`
	Version    int
}

// TableName specifies the database table name for blood units.
func (UnitDTO) TableName() string {
	return "blood_units"
}

// fromDomain converts a blood unit aggregate to its database representation.
func fromDomain(unit *blood.Unit) UnitDTO {
	var deliveryID *uuid.UUID
	if id := unit.Delivery(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	return UnitDTO{
		ID:         unit.ID().Bytes(),
		BloodType:  unit.BloodType().String(),
		DeliveryID: deliveryID,
		Version:    unit.Version(),
	}
}

// toDomain converts a database DTO to a blood unit aggregate.
func toDomain(dto UnitDTO) (*blood.Unit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bloodType, err := blood.NewType(dto.BloodType)
	if err != nil {
		return nil, err
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}

		deliveryID = &dID
	}

	return blood.RestoreUnit(id, bloodType, deliveryID, dto.Version)
}
