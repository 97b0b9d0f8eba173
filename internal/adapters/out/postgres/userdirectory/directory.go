// Package userdirectory resolves role-scoped recipient lists from the shared
// users table. The table is owned by the account service; this adapter only
// reads it, so there is no DTO or migration here.
package userdirectory

import (
	"context"

	"bloodlink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserDirectory implements ports.UserDirectory over the users table.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a read-only directory over the given
// connection.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// HospitalStaff returns the admin and staff user ids attached to the given
// hospital. An unknown hospital yields an empty slice.
func (d *GormUserDirectory) HospitalStaff(
	ctx context.Context,
	hospitalID kernel.UUID,
) ([]kernel.UUID, error) {
	if err := hospitalID.Validate(); err != nil {
		return nil, err
	}

	return d.query(ctx, `
		SELECT id
		FROM users
		WHERE hospital_id = ? AND role IN ('admin', 'staff')
		ORDER BY id
	`, hospitalID.Bytes())
}

// CenterStaff returns the user ids attached to the given donation center.
// An unknown center yields an empty slice.
func (d *GormUserDirectory) CenterStaff(
	ctx context.Context,
	centerID kernel.UUID,
) ([]kernel.UUID, error) {
	if err := centerID.Validate(); err != nil {
		return nil, err
	}

	return d.query(ctx, `
		SELECT id
		FROM users
		WHERE center_id = ? AND role IN ('admin', 'staff')
		ORDER BY id
	`, centerID.Bytes())
}

func (d *GormUserDirectory) query(ctx context.Context, sqlQuery string, arg any) ([]kernel.UUID, error) {
	users := make([]kernel.UUID, 0)

	rows, err := d.db.WithContext(ctx).Raw(sqlQuery, arg).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		users = append(users, userID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
