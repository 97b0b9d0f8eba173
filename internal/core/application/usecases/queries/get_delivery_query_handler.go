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

// GetDeliveryQueryHandler retrieves one delivery and its reserved units.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery lookups.
// Requires a GORM database connection for query execution.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when the
// delivery does not exist; a delivery without reserved units yields an empty
// UnitIDs slice.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	var (
		resp        GetDeliveryQueryResponse
		id          uuid.UUID
		droneID     uuid.NullUUID
		hospitalID  uuid.UUID
		centerID    uuid.UUID
		validatedAt sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Row()

	err := row.Scan(
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
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryQueryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID())
	}
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if resp.HospitalID, err = kernel.UUIDFromBytes(hospitalID[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if resp.CenterID, err = kernel.UUIDFromBytes(centerID[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if droneID.Valid {
		drone, idErr := kernel.UUIDFromBytes(droneID.UUID[:])
		if idErr != nil {
			return GetDeliveryQueryResponse{}, idErr
		}
		resp.DroneID = &drone
	}
	if validatedAt.Valid {
		t := validatedAt.Time
		resp.ValidatedAt = &t
	}

	resp.UnitIDs, err = h.unitIDs(ctx, query.DeliveryID())
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	return resp, nil
}

func (h GetDeliveryQueryHandler) unitIDs(
	ctx context.Context,
	deliveryID kernel.UUID,
) ([]kernel.UUID, error) {
	unitIDs := make([]kernel.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM blood_units
		WHERE delivery_id = ?
		ORDER BY id
	`, deliveryID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		unitID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		unitIDs = append(unitIDs, unitID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return unitIDs, nil
}
