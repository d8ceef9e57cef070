package queries

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrGetInvoicesByOwnerQueryIsNotConstructed = errors.New(
	"GetInvoicesByOwnerQuery must be created via NewGetInvoicesByOwnerQuery constructor",
)

// GetInvoicesByOwnerQuery lists all invoices billed to one owner.
type GetInvoicesByOwnerQuery struct {
	actor   kernel.Actor
	ownerID int64

	guard guard.ConstructorGuard
}

// NewGetInvoicesByOwnerQuery creates a query to list an owner's invoices.
func NewGetInvoicesByOwnerQuery(actor kernel.Actor, ownerID int64) (GetInvoicesByOwnerQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetInvoicesByOwnerQuery{}, err
	}
	if ownerID <= 0 {
		return GetInvoicesByOwnerQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"ownerId",
			fmt.Errorf("%d is not a positive identifier", ownerID),
		)
	}

	return GetInvoicesByOwnerQuery{
		actor:   actor,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoicesByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoicesByOwnerQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetInvoicesByOwnerQuery) Actor() kernel.Actor { return q.actor }

// OwnerID returns the owner whose invoices are listed.
func (q GetInvoicesByOwnerQuery) OwnerID() int64 { return q.ownerID }
