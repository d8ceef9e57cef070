package shipment

import (
	"errors"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned when a Recipient was not created
// through NewRecipient.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Recipient is the contact/address snapshot captured when a shipment is
// created. It is intentionally decoupled from the live address book: editing
// an address later must not rewrite where an existing shipment was sent.
// Recipient has no mutators; once a shipment carries a snapshot, it carries
// it forever.
type Recipient struct {
	name    string
	city    string
	address string
	phone   string

	guard guard.ConstructorGuard
}

// NewRecipient creates a recipient snapshot. Name, city and address are
// required; phone is optional.
func NewRecipient(name, city, address, phone string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientName")
	}
	if city == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientCity")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientAddress")
	}

	return Recipient{
		name:    name,
		city:    city,
		address: address,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the recipient was created through NewRecipient.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's name.
func (r Recipient) Name() string { return r.name }

// City returns the destination city.
func (r Recipient) City() string { return r.city }

// Address returns the destination street address.
func (r Recipient) Address() string { return r.address }

// Phone returns the recipient's phone number, possibly empty.
func (r Recipient) Phone() string { return r.phone }
