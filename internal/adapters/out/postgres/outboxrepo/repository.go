package outboxrepo

import (
	"context"
	"time"

	"bloodlink/internal/core/domain/model/notification"
	"bloodlink/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add saves a new outbox event to the database.
func (r *GormOutboxRepository) Add(ctx context.Context, event *notification.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the processed state of an existing event.
func (r *GormOutboxRepository) Update(ctx context.Context, event *notification.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	result := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"processed_at": dto.ProcessedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxEvent", event.ID().String())
	}

	return nil
}

// GetUnprocessed retrieves up to limit unprocessed events, oldest first,
// row-locked with FOR UPDATE SKIP LOCKED. Overlapping drain passes therefore
// claim disjoint batches instead of blocking each other.
func (r *GormOutboxRepository) GetUnprocessed(
	ctx context.Context,
	limit int,
) ([]*notification.Event, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processed_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*notification.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// DeleteProcessedBefore removes processed events older than the cutoff and
// returns how many rows were deleted.
func (r *GormOutboxRepository) DeleteProcessedBefore(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("processed_at IS NOT NULL AND processed_at < ?", cutoff).
		Delete(&EventDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
