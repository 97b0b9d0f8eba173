package queries

import (
	"context"

	"bloodlink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBloodUnitsQueryHandler lists blood units from the database.
type GetBloodUnitsQueryHandler struct {
	db *gorm.DB
}

// NewGetBloodUnitsQueryHandler creates a handler for unit listing queries.
// Requires a GORM database connection for query execution.
func NewGetBloodUnitsQueryHandler(db *gorm.DB) GetBloodUnitsQueryHandler {
	return GetBloodUnitsQueryHandler{db: db}
}

// Handle executes the listing, sorted by blood type then id. An empty result
// is a valid response, never an error.
func (h GetBloodUnitsQueryHandler) Handle(
	ctx context.Context,
	query GetBloodUnitsQuery,
) ([]GetBloodUnitsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	units := make([]GetBloodUnitsQueryResponse, 0)

	sqlQuery := `
		SELECT
			id,
			blood_type,
			delivery_id
		FROM blood_units
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if bloodType := query.BloodType(); bloodType != nil {
		sqlQuery += " AND blood_type = ?"
		args = append(args, bloodType.String())
	}
	if deliveryID := query.DeliveryID(); deliveryID != nil {
		sqlQuery += " AND delivery_id = ?"
		args = append(args, deliveryID.Bytes())
	}
	if query.OnlyAvailable() {
		sqlQuery += " AND delivery_id IS NULL"
	}

	sqlQuery += " ORDER BY blood_type, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp       GetBloodUnitsQueryResponse
			id         uuid.UUID
			deliveryID uuid.NullUUID
		)

		if err = rows.Scan(&id, &resp.BloodType, &deliveryID); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if deliveryID.Valid {
			delivery, idErr := kernel.UUIDFromBytes(deliveryID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DeliveryID = &delivery
		}

		units = append(units, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}
