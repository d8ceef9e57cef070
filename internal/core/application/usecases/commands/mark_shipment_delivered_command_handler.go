package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/services"
)

// MarkShipmentDeliveredCommandHandler completes an in-transit shipment and
// records the delivery time.
type MarkShipmentDeliveredCommandHandler struct {
	uowFactory  ShipmentUoWFactory
	accessGuard services.AccessGuard
}

// NewMarkShipmentDeliveredCommandHandler creates a handler for delivery
// confirmation.
func NewMarkShipmentDeliveredCommandHandler(uowFactory ShipmentUoWFactory) MarkShipmentDeliveredCommandHandler {
	return MarkShipmentDeliveredCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle marks the shipment delivered. Restricted to operators and admins.
func (h MarkShipmentDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkShipmentDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.accessGuard.RequireElevated(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	shp, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = shp.MarkDelivered(time.Now()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
