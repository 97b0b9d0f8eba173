package queries

import (
	"context"
	"database/sql"

	"bloodlink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler lists deliveries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery listing queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the listing. Urgent deliveries sort first, then newest
// requests. An empty result is a valid response, never an error.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetDeliveriesQueryResponse, 0)

	sqlQuery := `
		SELECT
			id,
			drone_id,
			hospital_id,
			center_id,
			urgent,
			notes,
			requested_at,
			validated_at,
			status
		FROM deliveries
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if droneID := query.DroneID(); droneID != nil {
		sqlQuery += " AND drone_id = ?"
		args = append(args, droneID.Bytes())
	}
	if hospitalID := query.HospitalID(); hospitalID != nil {
		sqlQuery += " AND hospital_id = ?"
		args = append(args, hospitalID.Bytes())
	}
	if centerID := query.CenterID(); centerID != nil {
		sqlQuery += " AND center_id = ?"
		args = append(args, centerID.Bytes())
	}

	sqlQuery += " ORDER BY urgent DESC, requested_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetDeliveriesQueryResponse
			id          uuid.UUID
			droneID     uuid.NullUUID
			hospitalID  uuid.UUID
			centerID    uuid.UUID
			validatedAt sql.NullTime
		)

		err = rows.Scan(
			&id,
			&droneID,
			&hospitalID,
			&centerID,
			&resp.Urgent,
			&resp.Notes,
			&resp.RequestedAt,
			&validatedAt,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.HospitalID, err = kernel.UUIDFromBytes(hospitalID[:]); err != nil {
			return nil, err
		}
		if resp.CenterID, err = kernel.UUIDFromBytes(centerID[:]); err != nil {
			return nil, err
		}
		if droneID.Valid {
			drone, idErr := kernel.UUIDFromBytes(droneID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DroneID = &drone
		}
		if validatedAt.Valid {
			t := validatedAt.Time
			resp.ValidatedAt = &t
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
