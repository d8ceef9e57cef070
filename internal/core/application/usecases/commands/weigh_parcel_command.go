package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrWeighParcelCommandIsNotConstructed = errors.New(
	"WeighParcelCommand must be created via NewWeighParcelCommand constructor",
)

// WeighParcelCommand represents the warehouse weigh-in of a pre-alerted
// parcel. Weighing prices the parcel and issues or corrects its invoice.
type WeighParcelCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	parcelID      int64
	weightLbs     decimal.Decimal
	declaredValue decimal.Decimal

	guard guard.ConstructorGuard
}

// NewWeighParcelCommand creates a command to record a parcel weigh-in.
// Re-weighing an already received parcel is allowed; the ledger corrects the
// invoice amount.
func NewWeighParcelCommand(
	actor kernel.Actor,
	parcelID int64,
	weightLbs decimal.Decimal,
	declaredValue decimal.Decimal,
) (WeighParcelCommand, error) {
	cmd := WeighParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setParcelID(parcelID),
		cmd.setWeightLbs(weightLbs),
		cmd.setDeclaredValue(declaredValue),
	); err != nil {
		return WeighParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WeighParcelCommand) Validate() error {
	return c.guard.Validate(ErrWeighParcelCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c WeighParcelCommand) Actor() kernel.Actor { return c.actor }

// ParcelID returns the identifier of the parcel being weighed.
func (c WeighParcelCommand) ParcelID() int64 { return c.parcelID }

// WeightLbs returns the measured weight in pounds.
func (c WeighParcelCommand) WeightLbs() decimal.Decimal { return c.weightLbs }

// DeclaredValue returns the verified declared value.
func (c WeighParcelCommand) DeclaredValue() decimal.Decimal { return c.declaredValue }

func (c *WeighParcelCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *WeighParcelCommand) setParcelID(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcelId",
			fmt.Errorf("%d is not a positive identifier", parcelID),
		)
	}
	c.parcelID = parcelID
	return nil
}

func (c *WeighParcelCommand) setWeightLbs(weightLbs decimal.Decimal) error {
	if !weightLbs.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightLbs",
			fmt.Errorf("%s is not greater than 0", weightLbs.String()),
		)
	}
	c.weightLbs = weightLbs
	return nil
}

func (c *WeighParcelCommand) setDeclaredValue(declaredValue decimal.Decimal) error {
	if declaredValue.IsNegative() {
		return errs.NewValueIsInvalidError("declaredValue")
	}
	c.declaredValue = declaredValue
	return nil
}
