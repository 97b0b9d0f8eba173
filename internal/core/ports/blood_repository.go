// Package ports defines repository interfaces for the blood delivery domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"bloodlink/internal/core/domain/model/blood"
	"bloodlink/internal/core/domain/model/kernel"
)

// BloodRepository defines the persistence contract for blood unit aggregates.
type BloodRepository interface {
	// Add persists a new blood unit created by inventory intake.
	Add(ctx context.Context, unit *blood.Unit) error

	// Update persists changes to an existing blood unit using optimistic
	// concurrency: the write fails with errs.ErrVersionConflict when the
	// stored version no longer matches the aggregate's loaded version.
	Update(ctx context.Context, unit *blood.Unit) error

	// Get retrieves a blood unit by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*blood.Unit, error)

	// GetAvailableByType retrieves up to limit available units of the given
	// type. When called inside a transaction the selected rows are locked
	// against concurrent reservation (FOR UPDATE SKIP LOCKED), so two
	// concurrent allocations never see the same candidate unit.
	GetAvailableByType(ctx context.Context, bloodType blood.Type, limit int) ([]*blood.Unit, error)

	// GetByDelivery retrieves all units assigned to the given delivery.
	// Returns an empty slice when the delivery holds no units.
	GetByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*blood.Unit, error)
}
