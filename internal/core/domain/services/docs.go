// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the blood delivery system.
// It implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - AlertDispatcher: resolves the recipients of a delivery status change
//     and composes one notification per recipient
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
