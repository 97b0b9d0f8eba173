package queries

import (
	"context"
	"database/sql"
	"errors"

	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBloodUnitQueryHandler retrieves one blood unit.
type GetBloodUnitQueryHandler struct {
	db *gorm.DB
}

// NewGetBloodUnitQueryHandler creates a handler for single-unit lookups.
// Requires a GORM database connection for query execution.
func NewGetBloodUnitQueryHandler(db *gorm.DB) GetBloodUnitQueryHandler {
	return GetBloodUnitQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when the unit
// does not exist.
func (h GetBloodUnitQueryHandler) Handle(
	ctx context.Context,
	query GetBloodUnitQuery,
) (GetBloodUnitQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBloodUnitQueryResponse{}, err
	}

	var (
		resp       GetBloodUnitQueryResponse
		id         uuid.UUID
		deliveryID uuid.NullUUID
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			blood_type,
			delivery_id
		FROM blood_units
		WHERE id = ?
	`, query.UnitID().Bytes()).Row()

	err := row.Scan(&id, &resp.BloodType, &deliveryID)
	if errors.Is(err, sql.ErrNoRows) {
		return GetBloodUnitQueryResponse{}, errs.NewObjectNotFoundError("bloodUnit", query.UnitID())
	}
	if err != nil {
		return GetBloodUnitQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetBloodUnitQueryResponse{}, err
	}
	if deliveryID.Valid {
		delivery, idErr := kernel.UUIDFromBytes(deliveryID.UUID[:])
		if idErr != nil {
			return GetBloodUnitQueryResponse{}, idErr
		}
		resp.DeliveryID = &delivery
	}

	return resp, nil
}
