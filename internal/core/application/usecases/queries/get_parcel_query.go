// Package queries contains read models for the billing and fulfillment
// core. Queries bypass the aggregates and read projections straight from the
// database, but every one of them runs the access guard before returning
// data: clients see only what they own, operators and admins see everything.
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

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves a single parcel by id on behalf of an actor.
type GetParcelQuery struct {
	actor    kernel.Actor
	parcelID int64

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query to retrieve a parcel.
func NewGetParcelQuery(actor kernel.Actor, parcelID int64) (GetParcelQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetParcelQuery{}, err
	}
	if parcelID <= 0 {
		return GetParcelQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"parcelId",
			fmt.Errorf("%d is not a positive identifier", parcelID),
		)
	}

	return GetParcelQuery{
		actor:    actor,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetParcelQuery) Actor() kernel.Actor { return q.actor }

// ParcelID returns the requested parcel id.
func (q GetParcelQuery) ParcelID() int64 { return q.parcelID }

// GetParcelQueryResponse is the read model of a parcel.
type GetParcelQueryResponse struct {
	ID            int64
	TrackingCode  string
	Description   string
	WeightLbs     decimal.Decimal
	DeclaredValue decimal.Decimal
	Domestic      bool
	Status        string
	OwnerID       int64
	CreatedAt     time.Time
}
