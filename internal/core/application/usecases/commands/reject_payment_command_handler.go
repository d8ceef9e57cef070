package commands

import (
	"context"

	"courier/internal/core/domain/services"
)

// RejectPaymentCommandHandler settles a payment negatively. In one
// transaction the payment becomes Rejected with the operator's reason, its
// invoice becomes Rejected, and the billed item records the rejection:
// a shipment stays at origin as PaymentRejected, a parcel likewise.
type RejectPaymentCommandHandler struct {
	uowFactory  SettlementUoWFactory
	accessGuard services.AccessGuard
}

// NewRejectPaymentCommandHandler creates a handler for payment rejection.
func NewRejectPaymentCommandHandler(uowFactory SettlementUoWFactory) RejectPaymentCommandHandler {
	return RejectPaymentCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle rejects the payment and propagates the outcome. Restricted to
// operators and admins. All-or-nothing.
func (h RejectPaymentCommandHandler) Handle(ctx context.Context, cmd RejectPaymentCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	invoiceRepo := uow.InvoiceRepository()

	pmt, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	inv, err := invoiceRepo.GetForUpdate(ctx, pmt.InvoiceID())
	if err != nil {
		return err
	}

	if err = pmt.Reject(cmd.Reason()); err != nil {
		return err
	}
	if err = inv.MarkRejected(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, pmt); err != nil {
		return err
	}
	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if shipmentID := inv.ShipmentID(); shipmentID != nil {
		shipmentRepo := uow.ShipmentRepository()

		shp, err := shipmentRepo.Get(ctx, *shipmentID)
		if err != nil {
			return err
		}
		if err = shp.RejectPayment(); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, shp); err != nil {
			return err
		}
	}

	if parcelID := inv.ParcelID(); parcelID != nil {
		parcelRepo := uow.ParcelRepository()

		prc, err := parcelRepo.Get(ctx, *parcelID)
		if err != nil {
			return err
		}
		if err = prc.RejectPayment(); err != nil {
			return err
		}
		if err = parcelRepo.Update(ctx, prc); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
