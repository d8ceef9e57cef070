package ports

import (
	"context"

	"courier/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. The recipient snapshot is written once on Add and never
// touched by Update.
type ShipmentRepository interface {
	// Add persists a new shipment and assigns its database identity.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its identifier.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// GetByTrackingCode retrieves a shipment by its unique tracking code.
	GetByTrackingCode(ctx context.Context, trackingCode string) (*shipment.Shipment, error)
}
