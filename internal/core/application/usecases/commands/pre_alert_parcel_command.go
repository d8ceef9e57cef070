package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPreAlertParcelCommandIsNotConstructed = errors.New(
	"PreAlertParcelCommand must be created via NewPreAlertParcelCommand constructor",
)

// PreAlertParcelCommand represents a client announcing an inbound parcel
// before it reaches the warehouse. The parcel is created unweighed and
// unpriced; billing starts at weigh-in.
type PreAlertParcelCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	trackingCode  string
	description   string
	declaredValue decimal.Decimal
	domestic      bool

	guard guard.ConstructorGuard
}

// NewPreAlertParcelCommand creates a command to pre-alert a parcel owned by
// the acting client.
func NewPreAlertParcelCommand(
	actor kernel.Actor,
	trackingCode string,
	description string,
	declaredValue decimal.Decimal,
	domestic bool,
) (PreAlertParcelCommand, error) {
	cmd := PreAlertParcelCommand{
		domestic: domestic,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTrackingCode(trackingCode),
		cmd.setDescription(description),
		cmd.setDeclaredValue(declaredValue),
	); err != nil {
		return PreAlertParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PreAlertParcelCommand) Validate() error {
	return c.guard.Validate(ErrPreAlertParcelCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c PreAlertParcelCommand) Actor() kernel.Actor { return c.actor }

// TrackingCode returns the carrier tracking code of the inbound parcel.
func (c PreAlertParcelCommand) TrackingCode() string { return c.trackingCode }

// Description returns the declared content description.
func (c PreAlertParcelCommand) Description() string { return c.description }

// DeclaredValue returns the declared value.
func (c PreAlertParcelCommand) DeclaredValue() decimal.Decimal { return c.declaredValue }

// Domestic reports whether the parcel ships domestically.
func (c PreAlertParcelCommand) Domestic() bool { return c.domestic }

func (c *PreAlertParcelCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *PreAlertParcelCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *PreAlertParcelCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *PreAlertParcelCommand) setDeclaredValue(declaredValue decimal.Decimal) error {
	if declaredValue.IsNegative() {
		return errs.NewValueIsInvalidError("declaredValue")
	}
	c.declaredValue = declaredValue
	return nil
}
