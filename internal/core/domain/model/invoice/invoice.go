package invoice

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

	// ErrInvoiceIDAlreadyAssigned is returned when AssignID is called on an
	// invoice that already has a persistent identity.
	ErrInvoiceIDAlreadyAssigned = errors.New("invoice already has an assigned id")
)

// Invoice is a billing document issued for exactly one logistics item. It is
// the aggregate root of the billing ledger.
//
// Invoice follows these invariants:
//   - Must have a unique invoice number and a unique natural key (the
//     tracking code of the item it bills)
//   - Must reference its owning user
//   - Amount corrections are allowed only while the invoice is payable
//   - Paid and Rejected are terminal statuses
type Invoice struct {
	id          int64
	number      string
	naturalKey  string
	description string
	amount      kernel.Money
	status      Status
	issueDate   time.Time
	dueDate     time.Time
	ownerID     int64
	shipmentID  *int64
	parcelID    *int64

	isConstructed bool
}

// NewInvoice creates a pending invoice for the item identified by naturalKey.
// Exactly one of shipmentID and parcelID should be set once the billed item
// is persisted; both may be nil at issue time when the ledger runs ahead of
// the item insert.
func NewInvoice(
	number string,
	naturalKey string,
	description string,
	amount kernel.Money,
	ownerID int64,
	issueDate time.Time,
	dueDate time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		status:        StatusPending,
		issueDate:     issueDate,
		dueDate:       dueDate,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setNumber(number),
		inv.setNaturalKey(naturalKey),
		inv.setDescription(description),
		inv.setAmount(amount),
		inv.setOwnerID(ownerID),
		inv.validateDates(),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an invoice from persistence.
func RestoreInvoice(
	id int64,
	number string,
	naturalKey string,
	description string,
	amount kernel.Money,
	status Status,
	ownerID int64,
	issueDate time.Time,
	dueDate time.Time,
	shipmentID *int64,
	parcelID *int64,
) (*Invoice, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"invoiceId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	inv, err := NewInvoice(number, naturalKey, description, amount, ownerID, issueDate, dueDate)
	if err != nil {
		return nil, err
	}

	inv.id = id
	inv.status = status
	inv.shipmentID = shipmentID
	inv.parcelID = parcelID
	return inv, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// AssignID sets the database-assigned identity after the first insert.
func (i *Invoice) AssignID(id int64) error {
	if i.id != 0 {
		return ErrInvoiceIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoiceId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	i.id = id
	return nil
}

// ID returns the invoice's persistent identity, or zero if not yet persisted.
func (i *Invoice) ID() int64 { return i.id }

// Number returns the human-facing invoice number.
func (i *Invoice) Number() string { return i.number }

// NaturalKey returns the tracking code of the billed item. The ledger uses it
// to make invoice issuance idempotent.
func (i *Invoice) NaturalKey() string { return i.naturalKey }

// Description returns the invoice description.
func (i *Invoice) Description() string { return i.description }

// Amount returns the billed amount.
func (i *Invoice) Amount() kernel.Money { return i.amount }

// Status returns the current lifecycle status.
func (i *Invoice) Status() Status { return i.status }

// IssueDate returns the issue date.
func (i *Invoice) IssueDate() time.Time { return i.issueDate }

// DueDate returns the due date.
func (i *Invoice) DueDate() time.Time { return i.dueDate }

// OwnerID returns the owning user's id.
func (i *Invoice) OwnerID() int64 { return i.ownerID }

// ShipmentID returns the billed shipment's id, or nil.
func (i *Invoice) ShipmentID() *int64 { return i.shipmentID }

// ParcelID returns the billed parcel's id, or nil.
func (i *Invoice) ParcelID() *int64 { return i.parcelID }

// IsPastDue reports whether the invoice passed its due date as of now.
func (i *Invoice) IsPastDue(now time.Time) bool {
	return now.After(i.dueDate)
}

// AttachShipment links the invoice to its persisted shipment.
func (i *Invoice) AttachShipment(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipmentId",
			fmt.Errorf("%d is not a positive identifier", shipmentID),
		)
	}
	i.shipmentID = &shipmentID
	return nil
}

// AttachParcel links the invoice to its persisted parcel.
func (i *Invoice) AttachParcel(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcelId",
			fmt.Errorf("%d is not a positive identifier", parcelID),
		)
	}
	i.parcelID = &parcelID
	return nil
}

// CorrectAmount replaces the billed amount. Corrections happen when an item
// is re-priced after its invoice was issued, for example when a pre-alerted
// parcel is weighed. A settled invoice can no longer be corrected.
func (i *Invoice) CorrectAmount(amount kernel.Money) error {
	if !i.status.IsPayable() {
		return errs.NewConflictError(
			fmt.Sprintf("invoice %s is %s and cannot be corrected", i.number, i.status),
		)
	}
	return i.setAmount(amount)
}

// MarkPaid settles the invoice after its payment was verified.
func (i *Invoice) MarkPaid() error {
	newStatus, err := i.status.Pay()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// MarkRejected closes the invoice after its payment was rejected.
func (i *Invoice) MarkRejected() error {
	newStatus, err := i.status.Reject()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// MarkOverdue flags a pending invoice that passed its due date.
func (i *Invoice) MarkOverdue() error {
	newStatus, err := i.status.Expire()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

func (i *Invoice) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("invoiceNumber")
	}
	i.number = number
	return nil
}

func (i *Invoice) setNaturalKey(naturalKey string) error {
	if naturalKey == "" {
		return errs.NewValueIsRequiredError("naturalKey")
	}
	i.naturalKey = naturalKey
	return nil
}

func (i *Invoice) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Invoice) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	i.amount = amount
	return nil
}

func (i *Invoice) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"ownerId",
			fmt.Errorf("%d is not a positive identifier", ownerID),
		)
	}
	i.ownerID = ownerID
	return nil
}

func (i *Invoice) validateDates() error {
	if i.issueDate.IsZero() {
		return errs.NewValueIsRequiredError("issueDate")
	}
	if i.dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}
	if i.dueDate.Before(i.issueDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"dueDate",
			fmt.Errorf("due date %s precedes issue date %s",
				i.dueDate.Format(time.DateOnly), i.issueDate.Format(time.DateOnly)),
		)
	}
	return nil
}
