package ports

import (
	"context"

	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery created by a successful allocation.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery and, when called inside a
	// transaction, row-locks it so a racing cancel and status update
	// serialize on the same row.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Delete removes a delivery record entirely. Only the cancellation path
	// uses this; deliveries that leave pending persist through terminal
	// states for audit.
	Delete(ctx context.Context, id kernel.UUID) error
}
