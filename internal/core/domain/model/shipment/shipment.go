package shipment

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrShipmentIDAlreadyAssigned is returned when AssignID is called on a
	// shipment that already has a persistent identity.
	ErrShipmentIDAlreadyAssigned = errors.New("shipment already has an assigned id")
)

// Shipment is a priced, trackable unit moving through logistics states. It is
// the aggregate root for the outbound (send) workflow.
//
// Shipment follows these invariants:
//   - Must have a non-empty, unique tracking code
//   - Must reference its owning user
//   - Carries a recipient snapshot that is immutable after creation
//   - Its cost is computed by the pricing calculator, never supplied raw by
//     the caller and never derived from the declared value alone
//   - Status transitions follow the rules defined on Status
type Shipment struct {
	id            int64
	trackingCode  string
	description   string
	weightLbs     decimal.Decimal
	declaredValue decimal.Decimal
	cost          kernel.Money
	status        Status
	recipient     Recipient
	ownerID       int64
	createdAt     time.Time
	deliveredAt   *time.Time

	isConstructed bool
}

// NewShipment creates a shipment at the origin facility with its computed
// cost and recipient snapshot.
func NewShipment(
	trackingCode string,
	description string,
	weightLbs decimal.Decimal,
	declaredValue decimal.Decimal,
	cost kernel.Money,
	recipient Recipient,
	ownerID int64,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        StatusAtOrigin,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setTrackingCode(trackingCode),
		s.setDescription(description),
		s.setWeightLbs(weightLbs),
		s.setDeclaredValue(declaredValue),
		s.setCost(cost),
		s.setRecipient(recipient),
		s.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
func RestoreShipment(
	id int64,
	trackingCode string,
	description string,
	weightLbs decimal.Decimal,
	declaredValue decimal.Decimal,
	cost kernel.Money,
	status Status,
	recipient Recipient,
	ownerID int64,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Shipment, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"shipmentId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s, err := NewShipment(trackingCode, description, weightLbs, declaredValue, cost, recipient, ownerID, createdAt)
	if err != nil {
		return nil, err
	}

	s.id = id
	s.status = status
	s.deliveredAt = deliveredAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// AssignID sets the database-assigned identity after the first insert.
func (s *Shipment) AssignID(id int64) error {
	if s.id != 0 {
		return ErrShipmentIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipmentId",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	s.id = id
	return nil
}

// ID returns the shipment's persistent identity, or zero if not yet persisted.
func (s *Shipment) ID() int64 { return s.id }

// TrackingCode returns the shipment's unique tracking code.
func (s *Shipment) TrackingCode() string { return s.trackingCode }

// Description returns the content description.
func (s *Shipment) Description() string { return s.description }

// WeightLbs returns the shipment weight in pounds.
func (s *Shipment) WeightLbs() decimal.Decimal { return s.weightLbs }

// DeclaredValue returns the declared value.
func (s *Shipment) DeclaredValue() decimal.Decimal { return s.declaredValue }

// Cost returns the computed shipping cost.
func (s *Shipment) Cost() kernel.Money { return s.cost }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// Recipient returns the immutable recipient snapshot.
func (s *Shipment) Recipient() Recipient { return s.recipient }

// OwnerID returns the owning user's id.
func (s *Shipment) OwnerID() int64 { return s.ownerID }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// DeliveredAt returns the delivery timestamp, or nil if not delivered.
func (s *Shipment) DeliveredAt() *time.Time { return s.deliveredAt }

// Dispatch moves the shipment from origin into transit. Triggered by the
// settlement workflow when the shipment's payment is verified.
func (s *Shipment) Dispatch() error {
	newStatus, err := s.status.Dispatch()
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// MarkDelivered completes the shipment and records the delivery time.
func (s *Shipment) MarkDelivered(at time.Time) error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.deliveredAt = &at
	return nil
}

// RejectPayment marks the shipment's settlement as rejected.
func (s *Shipment) RejectPayment() error {
	newStatus, err := s.status.RejectPayment()
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

func (s *Shipment) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	s.trackingCode = trackingCode
	return nil
}

func (s *Shipment) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	s.description = description
	return nil
}

func (s *Shipment) setWeightLbs(weightLbs decimal.Decimal) error {
	if !weightLbs.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightLbs",
			fmt.Errorf("%s is not greater than 0", weightLbs.String()),
		)
	}
	s.weightLbs = weightLbs
	return nil
}

func (s *Shipment) setDeclaredValue(declaredValue decimal.Decimal) error {
	if declaredValue.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"declaredValue",
			fmt.Errorf("%s is negative", declaredValue.String()),
		)
	}
	s.declaredValue = declaredValue
	return nil
}

func (s *Shipment) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	s.cost = cost
	return nil
}

func (s *Shipment) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	s.recipient = recipient
	return nil
}

func (s *Shipment) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"ownerId",
			fmt.Errorf("%d is not a positive identifier", ownerID),
		)
	}
	s.ownerID = ownerID
	return nil
}
