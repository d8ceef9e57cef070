package commands

import (
	"context"

	"courier/internal/core/domain/services"
)

// VerifyPaymentCommandHandler settles a payment positively. In one
// transaction the payment becomes Verified, its invoice becomes Paid, and
// the billed shipment leaves the origin facility. Parcel-based settlements
// go through ApproveParcelPaymentCommandHandler instead.
//
// The invoice row is locked so verification cannot interleave with a ledger
// correction or a competing settlement of the same invoice.
type VerifyPaymentCommandHandler struct {
	uowFactory  SettlementUoWFactory
	accessGuard services.AccessGuard
}

// NewVerifyPaymentCommandHandler creates a handler for payment verification.
func NewVerifyPaymentCommandHandler(uowFactory SettlementUoWFactory) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle verifies the payment and propagates the settlement. Restricted to
// operators and admins. All-or-nothing: any failed transition rolls back
// every change.
func (h VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
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

	if err = pmt.Verify(); err != nil {
		return err
	}
	if err = inv.MarkPaid(); err != nil {
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
		if err = shp.Dispatch(); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, shp); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
