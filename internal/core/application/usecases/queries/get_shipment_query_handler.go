package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads a shipment row and applies the access guard
// against its owner.
type GetShipmentQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

// NewGetShipmentQueryHandler creates a handler for shipment lookups.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{
		db:          db,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle returns the shipment with its recipient snapshot.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var resp GetShipmentQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			description,
			weight_lbs,
			declared_value,
			cost,
			status,
			recipient_name,
			recipient_city,
			recipient_address,
			recipient_phone,
			owner_id,
			created_at,
			delivered_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.TrackingCode,
		&resp.Description,
		&resp.WeightLbs,
		&resp.DeclaredValue,
		&resp.Cost,
		&resp.Status,
		&resp.RecipientName,
		&resp.RecipientCity,
		&resp.RecipientAddress,
		&resp.RecipientPhone,
		&resp.OwnerID,
		&resp.CreatedAt,
		&resp.DeliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if err = h.accessGuard.Authorize(query.Actor(), resp.OwnerID); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return resp, nil
}
