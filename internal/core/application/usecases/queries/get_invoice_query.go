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

var ErrGetInvoiceQueryIsNotConstructed = errors.New(
	"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
)

// GetInvoiceQuery retrieves a single invoice by id on behalf of an actor.
type GetInvoiceQuery struct {
	actor     kernel.Actor
	invoiceID int64

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query to retrieve an invoice.
func NewGetInvoiceQuery(actor kernel.Actor, invoiceID int64) (GetInvoiceQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}
	if invoiceID <= 0 {
		return GetInvoiceQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"invoiceId",
			fmt.Errorf("%d is not a positive identifier", invoiceID),
		)
	}

	return GetInvoiceQuery{
		actor:     actor,
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetInvoiceQuery) Actor() kernel.Actor { return q.actor }

// InvoiceID returns the requested invoice id.
func (q GetInvoiceQuery) InvoiceID() int64 { return q.invoiceID }

// InvoiceResponse is the read model of an invoice, shared by the single
// lookup and the per-owner listing.
type InvoiceResponse struct {
	ID          int64
	Number      string
	NaturalKey  string
	Description string
	Amount      decimal.Decimal
	Status      string
	IssueDate   time.Time
	DueDate     time.Time
	OwnerID     int64
	ShipmentID  *int64
	ParcelID    *int64
}
