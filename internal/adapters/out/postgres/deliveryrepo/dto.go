// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"time"

	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// Indexed by hospital, center and drone to serve the listing queries.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DroneID     *uuid.UUID `gorm:"type:uuid;index"`
	HospitalID  uuid.UUID  `gorm:"type:uuid;index"`
	CenterID    uuid.UUID  `gorm:"type:uuid;index"`
	Urgent      bool
	Notes       string
	RequestedAt time.Time
	ValidatedAt *time.Time
	Status      string `gorm:"type:varchar(64);index"`
}

// TableName specifies the database table name for deliveries.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(del *delivery.Delivery) DeliveryDTO {
	var droneID *uuid.UUID
	if id := del.Drone(); id != nil {
		raw := id.Bytes()
		droneID = &raw
	}

	return DeliveryDTO{
		ID:          del.ID().Bytes(),
		DroneID:     droneID,
		HospitalID:  del.Hospital().Bytes(),
		CenterID:    del.Center().Bytes(),
		Urgent:      del.IsUrgent(),
		Notes:       del.Notes(),
		RequestedAt: del.RequestedAt(),
		ValidatedAt: del.ValidatedAt(),
		Status:      del.Status().String(),
	}
}

// toDomain converts a database DTO to a delivery aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	hospitalID, err := kernel.UUIDFromBytes(dto.HospitalID[:])
	if err != nil {
		return nil, err
	}

	centerID, err := kernel.UUIDFromBytes(dto.CenterID[:])
	if err != nil {
		return nil, err
	}

	var droneID *kernel.UUID
	if dto.DroneID != nil {
		dID, droneErr := kernel.UUIDFromBytes((*dto.DroneID)[:])
		if droneErr != nil {
			return nil, droneErr
		}

		droneID = &dID
	}

	return delivery.RestoreDelivery(
		id,
		hospitalID,
		centerID,
		dto.Urgent,
		dto.Notes,
		dto.RequestedAt,
		dto.ValidatedAt,
		delivery.Status(dto.Status),
		droneID,
	)
}
