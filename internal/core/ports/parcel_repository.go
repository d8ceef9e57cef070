package ports

import (
	"context"

	"courier/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel and assigns its database identity.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its identifier.
	Get(ctx context.Context, id int64) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by its unique tracking code.
	GetByTrackingCode(ctx context.Context, trackingCode string) (*parcel.Parcel, error)
}
