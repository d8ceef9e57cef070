package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler reads a parcel row and applies the access guard
// against its owner.
type GetParcelQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

// NewGetParcelQueryHandler creates a handler for parcel lookups.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{
		db:          db,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle returns the parcel, not-found if the id is unknown, forbidden if the
// actor does not own it.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	var resp GetParcelQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			description,
			weight_lbs,
			declared_value,
			domestic,
			status,
			owner_id,
			created_at
		FROM parcels
		WHERE id = ?
	`, query.ParcelID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.TrackingCode,
		&resp.Description,
		&resp.WeightLbs,
		&resp.DeclaredValue,
		&resp.Domestic,
		&resp.Status,
		&resp.OwnerID,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("parcelId", query.ParcelID())
	}
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	if err = h.accessGuard.Authorize(query.Actor(), resp.OwnerID); err != nil {
		return GetParcelQueryResponse{}, err
	}

	return resp, nil
}
