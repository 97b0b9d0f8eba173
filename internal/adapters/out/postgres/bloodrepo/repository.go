package bloodrepo

import (
	"context"
	"errors"

	"bloodlink/internal/core/domain/model/blood"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBloodRepository implements BloodRepository using GORM.
type GormBloodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBloodRepository creates a new GORM blood unit repository.
func NewGormBloodRepository(db *gorm.DB, tracker aggregateTracker) *GormBloodRepository {
	return &GormBloodRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new blood unit to the database.
func (r *GormBloodRepository) Add(ctx context.Context, aggregate *blood.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing blood unit using optimistic concurrency: the write
// only lands when the stored version still matches the version the aggregate
// was loaded with, and it bumps the version in the same statement. A stale
// aggregate yields errs.VersionConflictError.
func (r *GormBloodRepository) Update(ctx context.Context, aggregate *blood.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UnitDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"blood_type":  dto.BloodType,
			"delivery_id": dto.DeliveryID,
			"version":     dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("bloodUnit", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a blood unit by ID.
func (r *GormBloodRepository) Get(ctx context.Context, id kernel.UUID) (*blood.Unit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bloodUnit", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAvailableByType retrieves up to limit available units of the given type,
// row-locked with FOR UPDATE SKIP LOCKED. Inside a transaction this makes the
// candidate selection of two concurrent allocations disjoint; units locked by
// another transaction are skipped rather than waited on.
func (r *GormBloodRepository) GetAvailableByType(
	ctx context.Context,
	bloodType blood.Type,
	limit int,
) ([]*blood.Unit, error) {
	if err := bloodType.Validate(); err != nil {
		return nil, err
	}

	var dtos []UnitDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("blood_type = ? AND delivery_id IS NULL", bloodType.String()).
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// GetByDelivery retrieves all units assigned to the given delivery.
func (r *GormBloodRepository) GetByDelivery(
	ctx context.Context,
	deliveryID kernel.UUID,
) ([]*blood.Unit, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []UnitDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "delivery_id = ?", deliveryID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

func (r *GormBloodRepository) toDomainSlice(dtos []UnitDTO) ([]*blood.Unit, error) {
	units := make([]*blood.Unit, 0, len(dtos))
	for _, dto := range dtos {
		unit, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	return units, nil
}
