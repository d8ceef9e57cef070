package payment

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

	// ErrPaymentIDAlreadyAssigned is returned when AssignID is called on a
	// payment that already has a persistent identity.
	ErrPaymentIDAlreadyAssigned = errors.New("payment already has an assigned id")
)

// Payment is a settlement attempt against a single invoice. It is the
// aggregate root of the settlement workflow.
//
// Payment follows these invariants:
//   - Always references exactly one invoice
//   - Amount is positive and never exceeds the invoice amount (enforced by
//     the submit handler, which sees both aggregates)
//   - Created pending; verified or rejected exactly once by an operator
//   - A rejection always carries a reason
type Payment struct {
	id        int64
	invoiceID int64
	parcelID  *int64
	amount    kernel.Money
	method    Method
	status    Status
	reference string
	receipt   string
	note      string
	reason    string
	createdAt time.Time

	isConstructed bool
}

// NewPayment creates a pending payment against the given invoice. The receipt
// number is generated here so it exists before the payment is persisted.
func NewPayment(
	invoiceID int64,
	amount kernel.Money,
	method Method,
	reference string,
	note string,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		status:        StatusPending,
		receipt:       "RCP-" + uuid.NewString(),
		note:          note,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setInvoiceID(invoiceID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setReference(reference),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id int64,
	invoiceID int64,
	parcelID *int64,
	amount kernel.Money,
	method Method,
	status Status,
	reference string,
	receipt string,
	note string,
	reason string,
	createdAt time.Time,
) (*Payment, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"paymentId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if receipt == "" {
		return nil, errs.NewValueIsRequiredError("receipt")
	}

	p, err := NewPayment(invoiceID, amount, method, reference, note, createdAt)
	if err != nil {
		return nil, err
	}

	p.id = id
	p.parcelID = parcelID
	p.status = status
	p.receipt = receipt
	p.reason = reason
	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// AssignID sets the database-assigned identity after the first insert.
func (p *Payment) AssignID(id int64) error {
	if p.id != 0 {
		return ErrPaymentIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	p.id = id
	return nil
}

// ID returns the payment's persistent identity, or zero if not yet persisted.
func (p *Payment) ID() int64 { return p.id }

// InvoiceID returns the settled invoice's id.
func (p *Payment) InvoiceID() int64 { return p.invoiceID }

// ParcelID returns the parcel this payment releases, or nil when the payment
// settles a shipment invoice.
func (p *Payment) ParcelID() *int64 { return p.parcelID }

// Amount returns the paid amount.
func (p *Payment) Amount() kernel.Money { return p.amount }

// Method returns the payment method.
func (p *Payment) Method() Method { return p.method }

// Status returns the current lifecycle status.
func (p *Payment) Status() Status { return p.status }

// Reference returns the external payment reference, possibly empty.
func (p *Payment) Reference() string { return p.reference }

// Receipt returns the generated receipt number.
func (p *Payment) Receipt() string { return p.receipt }

// Note returns the submitter's note, possibly empty.
func (p *Payment) Note() string { return p.note }

// Reason returns the rejection reason, empty unless rejected.
func (p *Payment) Reason() string { return p.reason }

// CreatedAt returns the submission timestamp.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// IsPending reports whether the payment still awaits an operator decision.
// Only pending payments may be deleted.
func (p *Payment) IsPending() bool { return p.status == StatusPending }

// AttachParcel links the payment to the parcel it releases on verification.
func (p *Payment) AttachParcel(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcelId",
			fmt.Errorf("%d is not a positive identifier", parcelID),
		)
	}
	p.parcelID = &parcelID
	return nil
}

// Verify records the operator's confirmation of funds.
func (p *Payment) Verify() error {
	newStatus, err := p.status.Verify()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// Reject records the operator's rejection with a mandatory reason.
func (p *Payment) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	newStatus, err := p.status.Reject()
	if err != nil {
		return err
	}
	p.status = newStatus
	p.reason = reason
	return nil
}

func (p *Payment) setInvoiceID(invoiceID int64) error {
	if invoiceID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoiceId",
			fmt.Errorf("%d is not a positive identifier", invoiceID),
		)
	}
	p.invoiceID = invoiceID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			errors.New("amount must be greater than 0"),
		)
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setReference(reference string) error {
	p.reference = reference
	return nil
}
