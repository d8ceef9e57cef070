package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPendingPaymentsQueryIsNotConstructed = errors.New(
	"GetPendingPaymentsQuery must be created via NewGetPendingPaymentsQuery constructor",
)

// GetPendingPaymentsQuery lists every payment awaiting an operator decision.
// This is the verification worklist; only elevated roles may read it.
type GetPendingPaymentsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetPendingPaymentsQuery creates a query for the verification worklist.
func NewGetPendingPaymentsQuery(actor kernel.Actor) (GetPendingPaymentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetPendingPaymentsQuery{}, err
	}

	return GetPendingPaymentsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingPaymentsQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetPendingPaymentsQuery) Actor() kernel.Actor { return q.actor }

// PendingPaymentResponse is one worklist entry: the payment plus enough
// invoice and payer context to decide on it.
type PendingPaymentResponse struct {
	ID            int64
	InvoiceID     int64
	InvoiceNumber string
	PayerName     string
	Amount        decimal.Decimal
	Method        string
	Reference     string
	Note          string
	CreatedAt     time.Time
}
