package parcel

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrParcelIDAlreadyAssigned is returned when AssignID is called on a
	// parcel that already has a persistent identity.
	ErrParcelIDAlreadyAssigned = errors.New("parcel already has an assigned id")
)

// Parcel is a pre-alerted item awaiting weigh-in, before it becomes a
// billable unit. It is the aggregate root for the import workflow.
//
// Parcel follows these invariants:
//   - Must have a non-empty, unique tracking code
//   - Must reference its owning user
//   - Weight and declared value are never negative; both start at zero on
//     pre-alert and are set when an operator records the weigh-in
//   - Status transitions follow the rules defined on Status
//   - A parcel is never deleted once an invoice references it (enforced at
//     the persistence layer)
//
// The identity is assigned by the database: a newly constructed parcel has a
// zero id until the repository persists it and calls AssignID.
type Parcel struct {
	id            int64
	trackingCode  string
	description   string
	weightLbs     decimal.Decimal
	declaredValue decimal.Decimal
	domestic      bool
	status        Status
	ownerID       int64
	createdAt     time.Time

	isConstructed bool
}

// NewParcel creates a pre-alerted parcel for the given owner. Weight starts
// at zero; the declared value is what the client announced and may be
// corrected at weigh-in.
func NewParcel(
	trackingCode string,
	description string,
	declaredValue decimal.Decimal,
	domestic bool,
	ownerID int64,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        StatusPreAlerted,
		weightLbs:     decimal.Zero,
		createdAt:     createdAt,
		domestic:      domestic,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTrackingCode(trackingCode),
		p.setDescription(description),
		p.setDeclaredValue(declaredValue),
		p.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence. All invariants are
// re-validated so corrupt rows cannot produce an invalid aggregate.
func RestoreParcel(
	id int64,
	trackingCode string,
	description string,
	weightLbs decimal.Decimal,
	declaredValue decimal.Decimal,
	domestic bool,
	status Status,
	ownerID int64,
	createdAt time.Time,
) (*Parcel, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"parcelId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if weightLbs.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"weightLbs",
			fmt.Errorf("%s is negative", weightLbs.String()),
		)
	}

	p, err := NewParcel(trackingCode, description, declaredValue, domestic, ownerID, createdAt)
	if err != nil {
		return nil, err
	}

	p.id = id
	p.weightLbs = weightLbs
	p.status = status
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// AssignID sets the database-assigned identity after the first insert.
// It fails if the parcel already has an id.
func (p *Parcel) AssignID(id int64) error {
	if p.id != 0 {
		return ErrParcelIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcelId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	p.id = id
	return nil
}

// ID returns the parcel's persistent identity, or zero if not yet persisted.
func (p *Parcel) ID() int64 { return p.id }

// TrackingCode returns the parcel's unique tracking code.
func (p *Parcel) TrackingCode() string { return p.trackingCode }

// Description returns the client-provided content description.
func (p *Parcel) Description() string { return p.description }

// WeightLbs returns the recorded weight in pounds (zero until weighed).
func (p *Parcel) WeightLbs() decimal.Decimal { return p.weightLbs }

// DeclaredValue returns the declared customs value.
func (p *Parcel) DeclaredValue() decimal.Decimal { return p.declaredValue }

// Domestic reports whether the parcel moves under the domestic tariff.
func (p *Parcel) Domestic() bool { return p.domestic }

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status { return p.status }

// OwnerID returns the owning user's id.
func (p *Parcel) OwnerID() int64 { return p.ownerID }

// CreatedAt returns the pre-alert timestamp.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// RecordWeighIn records the physical weigh-in of the parcel at the origin
// warehouse, replacing the weight and declared value. The parcel moves to
// Received; re-weighing an already Received parcel is allowed so a pricing
// mistake can be corrected before settlement.
func (p *Parcel) RecordWeighIn(weightLbs, declaredValue decimal.Decimal) error {
	if !weightLbs.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightLbs",
			fmt.Errorf("%s is not greater than 0", weightLbs.String()),
		)
	}
	if declaredValue.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"declaredValue",
			fmt.Errorf("%s is negative", declaredValue.String()),
		)
	}

	newStatus, err := p.status.Receive()
	if err != nil {
		return err
	}

	p.weightLbs = weightLbs
	p.declaredValue = declaredValue
	p.status = newStatus
	return nil
}

// MoveToWarehouse marks the parcel as held in the destination warehouse after
// its settlement was accepted through the legacy parcel approval flow.
func (p *Parcel) MoveToWarehouse() error {
	newStatus, err := p.status.Warehouse()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// RejectPayment marks the parcel's settlement as rejected.
func (p *Parcel) RejectPayment() error {
	newStatus, err := p.status.RejectPayment()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

func (p *Parcel) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	p.trackingCode = trackingCode
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Parcel) setDeclaredValue(declaredValue decimal.Decimal) error {
	if declaredValue.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"declaredValue",
			fmt.Errorf("%s is negative", declaredValue.String()),
		)
	}
	p.declaredValue = declaredValue
	return nil
}

func (p *Parcel) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"ownerId",
			fmt.Errorf("%d is not a positive identifier", ownerID),
		)
	}
	p.ownerID = ownerID
	return nil
}
