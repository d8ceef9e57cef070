package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to send a shipment. Clients
// ship for themselves; operators may ship on behalf of any owner.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	ownerID       int64
	trackingCode  string
	description   string
	weightLbs     decimal.Decimal
	declaredValue decimal.Decimal
	domestic      bool
	recipient     shipment.Recipient

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment with
// its recipient snapshot.
func NewCreateShipmentCommand(
	actor kernel.Actor,
	ownerID int64,
	trackingCode string,
	description string,
	weightLbs decimal.Decimal,
	declaredValue decimal.Decimal,
	domestic bool,
	recipient shipment.Recipient,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		domestic: domestic,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOwnerID(ownerID),
		cmd.setTrackingCode(trackingCode),
		cmd.setDescription(description),
		cmd.setWeightLbs(weightLbs),
		cmd.setDeclaredValue(declaredValue),
		cmd.setRecipient(recipient),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c CreateShipmentCommand) Actor() kernel.Actor { return c.actor }

// OwnerID returns the user the shipment is created for.
func (c CreateShipmentCommand) OwnerID() int64 { return c.ownerID }

// TrackingCode returns the shipment's tracking code.
func (c CreateShipmentCommand) TrackingCode() string { return c.trackingCode }

// Description returns the content description.
func (c CreateShipmentCommand) Description() string { return c.description }

// WeightLbs returns the shipment weight in pounds.
func (c CreateShipmentCommand) WeightLbs() decimal.Decimal { return c.weightLbs }

// DeclaredValue returns the declared value.
func (c CreateShipmentCommand) DeclaredValue() decimal.Decimal { return c.declaredValue }

// Domestic reports whether the destination is domestic.
func (c CreateShipmentCommand) Domestic() bool { return c.domestic }

// Recipient returns the recipient snapshot.
func (c CreateShipmentCommand) Recipient() shipment.Recipient { return c.recipient }

func (c *CreateShipmentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateShipmentCommand) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"ownerId",
			fmt.Errorf("%d is not a positive identifier", ownerID),
		)
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateShipmentCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *CreateShipmentCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CreateShipmentCommand) setWeightLbs(weightLbs decimal.Decimal) error {
	if !weightLbs.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightLbs",
			fmt.Errorf("%s is not greater than 0", weightLbs.String()),
		)
	}
	c.weightLbs = weightLbs
	return nil
}

func (c *CreateShipmentCommand) setDeclaredValue(declaredValue decimal.Decimal) error {
	if declaredValue.IsNegative() {
		return errs.NewValueIsInvalidError("declaredValue")
	}
	c.declaredValue = declaredValue
	return nil
}

func (c *CreateShipmentCommand) setRecipient(recipient shipment.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	c.recipient = recipient
	return nil
}
