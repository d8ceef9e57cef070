package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrMarkShipmentDeliveredCommandIsNotConstructed = errors.New(
	"MarkShipmentDeliveredCommand must be created via NewMarkShipmentDeliveredCommand constructor",
)

// MarkShipmentDeliveredCommand represents an operator confirming delivery of
// an in-transit shipment.
type MarkShipmentDeliveredCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewMarkShipmentDeliveredCommand creates a command to mark a shipment
// delivered.
func NewMarkShipmentDeliveredCommand(actor kernel.Actor, shipmentID int64) (MarkShipmentDeliveredCommand, error) {
	cmd := MarkShipmentDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return MarkShipmentDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkShipmentDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkShipmentDeliveredCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c MarkShipmentDeliveredCommand) Actor() kernel.Actor { return c.actor }

// ShipmentID returns the shipment being delivered.
func (c MarkShipmentDeliveredCommand) ShipmentID() int64 { return c.shipmentID }

func (c *MarkShipmentDeliveredCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *MarkShipmentDeliveredCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipmentId",
			fmt.Errorf("%d is not a positive identifier", shipmentID),
		)
	}
	c.shipmentID = shipmentID
	return nil
}
