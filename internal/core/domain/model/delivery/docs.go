// Package delivery provides domain entities and business logic for blood
// transport deliveries. It implements the Delivery aggregate root with
// lifecycle management and status transitions.
//
// The package includes:
//   - Delivery: The aggregate root that manages delivery identity, references,
//     and lifecycle
//   - Status: The lifecycle tag of a delivery
//
// Key business rules:
//   - Deliveries must reference a valid hospital and donation center
//   - Deliveries start in the pending status and may only be cancelled
//     (hard-deleted, with inventory release) while still pending
//   - Beyond the well-known tags, status is an open set: operational statuses
//     defined outside this core are carried through as opaque non-empty
//     strings
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
