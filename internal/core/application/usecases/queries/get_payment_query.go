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

var ErrGetPaymentQueryIsNotConstructed = errors.New(
	"GetPaymentQuery must be created via NewGetPaymentQuery constructor",
)

// GetPaymentQuery retrieves a single payment by id on behalf of an actor.
// Payment ownership is derived through the invoice it settles.
type GetPaymentQuery struct {
	actor     kernel.Actor
	paymentID int64

	guard guard.ConstructorGuard
}

// NewGetPaymentQuery creates a query to retrieve a payment.
func NewGetPaymentQuery(actor kernel.Actor, paymentID int64) (GetPaymentQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetPaymentQuery{}, err
	}
	if paymentID <= 0 {
		return GetPaymentQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"paymentId",
			fmt.Errorf("%d is not a positive identifier", paymentID),
		)
	}

	return GetPaymentQuery{
		actor:     actor,
		paymentID: paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetPaymentQuery) Actor() kernel.Actor { return q.actor }

// PaymentID returns the requested payment id.
func (q GetPaymentQuery) PaymentID() int64 { return q.paymentID }

// GetPaymentQueryResponse is the read model of a payment joined with the
// invoice it settles.
type GetPaymentQueryResponse struct {
	ID            int64
	InvoiceID     int64
	InvoiceNumber string
	ParcelID      *int64
	Amount        decimal.Decimal
	Method        string
	Status        string
	Reference     string
	Receipt       string
	Note          string
	Reason        string
	OwnerID       int64
	CreatedAt     time.Time
}
