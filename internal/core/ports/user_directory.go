package ports

import (
	"context"

	"bloodlink/internal/core/domain/model/kernel"
)

// UserDirectory is the read-only contract against the external users
// collaborator. The user table itself (CRUD, roles, authentication) is owned
// elsewhere; this core only resolves role-scoped recipient lists for
// notification fan-out.
type UserDirectory interface {
	// HospitalStaff returns the admin and staff user ids attached to the
	// given hospital. An unknown hospital yields an empty slice.
	HospitalStaff(ctx context.Context, hospitalID kernel.UUID) ([]kernel.UUID, error)

	// CenterStaff returns the user ids attached to the given donation center.
	// An unknown center yields an empty slice.
	CenterStaff(ctx context.Context, centerID kernel.UUID) ([]kernel.UUID, error)
}
