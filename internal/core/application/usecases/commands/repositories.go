// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bloodlink/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BloodRepoFactory provides access to the blood unit repository within a transaction.
	BloodRepoFactory interface {
		BloodRepository() ports.BloodRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// AllocationUoW manages transactions spanning the inventory pool and the
	// delivery table. Used by order placement and cancellation, where unit
	// assignment and the delivery row must commit or roll back together.
	AllocationUoW interface {
		TxManager
		BloodRepoFactory
		DeliveryRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// LifecycleUoW manages transactions for status updates, which persist the
	// delivery change and its outbox event atomically.
	LifecycleUoW interface {
		TxManager
		DeliveryRepoFactory
		OutboxRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// NotificationUoW manages transactions for notification-only operations
	// (read acknowledgment).
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// DispatchUoW manages transactions for draining the outbox: reading
	// events, loading their deliveries, and writing notifications.
	DispatchUoW interface {
		TxManager
		DeliveryRepoFactory
		NotificationRepoFactory
		OutboxRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
