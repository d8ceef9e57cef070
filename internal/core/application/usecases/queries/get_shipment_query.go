package queries

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment by id on behalf of an actor.
type GetShipmentQuery struct {
	actor      kernel.Actor
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve a shipment.
func NewGetShipmentQuery(actor kernel.Actor, shipmentID int64) (GetShipmentQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	if shipmentID <= 0 {
		return GetShipmentQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"shipmentId",
			fmt.Errorf("%d is not a positive identifier", shipmentID),
		)
	}

	return GetShipmentQuery{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetShipmentQuery) Actor() kernel.Actor { return q.actor }

// ShipmentID returns the requested shipment id.
func (q GetShipmentQuery) ShipmentID() int64 { return q.shipmentID }

// GetShipmentQueryResponse is the read model of a shipment, recipient
// snapshot included.
type GetShipmentQueryResponse struct {
	ID               int64
	TrackingCode     string
	Description      string
	WeightLbs        decimal.Decimal
	DeclaredValue    decimal.Decimal
	Cost             decimal.Decimal
	Status           string
	RecipientName    string
	RecipientCity    string
	RecipientAddress string
	RecipientPhone   string
	OwnerID          int64
	CreatedAt        time.Time
	DeliveredAt      *time.Time
}
