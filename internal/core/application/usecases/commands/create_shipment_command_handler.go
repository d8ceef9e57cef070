package commands

import (
	"context"
	"fmt"
	"time"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
)

// CreateShipmentCommandHandler handles shipment creation. The shipment is
// priced by the calculator and billed through the invoice ledger in the same
// transaction, so a shipment can never exist without its invoice.
type CreateShipmentCommandHandler struct {
	uowFactory  ShippingUoWFactory
	accessGuard services.AccessGuard
	pricing     services.PricingCalculator
	ledger      InvoiceLedger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShippingUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
		pricing:     services.NewPricingCalculator(),
		ledger:      NewInvoiceLedger(),
	}
}

// Handle creates the shipment with its computed cost and invoice, returning
// the persisted shipment.
func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.accessGuard.Authorize(cmd.Actor(), cmd.OwnerID()); err != nil {
		return nil, err
	}

	breakdown, err := h.pricing.ComputeCost(cmd.WeightLbs(), cmd.DeclaredValue(), cmd.Domestic())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newShipment, err := shipment.NewShipment(
		cmd.TrackingCode(),
		cmd.Description(),
		cmd.WeightLbs(),
		cmd.DeclaredValue(),
		breakdown.Total,
		cmd.Recipient(),
		cmd.OwnerID(),
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return nil, err
	}

	shipmentID := newShipment.ID()
	_, err = h.ledger.Upsert(ctx, uow.InvoiceRepository(), uow.UserRepository(), LedgerRequest{
		NaturalKey:   newShipment.TrackingCode(),
		Description:  fmt.Sprintf("Shipping %s to %s", newShipment.TrackingCode(), cmd.Recipient().City()),
		OwnerID:      newShipment.OwnerID(),
		Amount:       breakdown.Total,
		FormatNumber: shipmentInvoiceNumber(now.Year()),
		DueInDays:    paymentTermDays,
		ShipmentID:   &shipmentID,
	}, now)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newShipment, nil
}
