// Package blood provides domain entities for the blood inventory held at
// donation centers. It implements the Unit aggregate root and the Type value
// object covering the eight ABO/Rh categories.
//
// Key business rules:
//   - A unit is available if and only if it has no delivery assignment
//   - A unit is assigned to at most one delivery at a time
//   - Assignment and release are the only mutations of a unit after intake
//   - Every mutation bumps the unit's version, which backs optimistic
//     concurrency control in the persistence layer
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package blood
