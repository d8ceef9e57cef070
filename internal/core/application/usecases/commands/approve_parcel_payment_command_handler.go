package commands

import (
	"context"
	"fmt"

	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

// ApproveParcelPaymentCommandHandler settles a parcel payment: the payment
// becomes Verified, its invoice becomes Paid, and the parcel moves into the
// warehouse. One transaction, same locking discipline as verification.
type ApproveParcelPaymentCommandHandler struct {
	uowFactory  SettlementUoWFactory
	accessGuard services.AccessGuard
}

// NewApproveParcelPaymentCommandHandler creates a handler for parcel payment
// approval.
func NewApproveParcelPaymentCommandHandler(uowFactory SettlementUoWFactory) ApproveParcelPaymentCommandHandler {
	return ApproveParcelPaymentCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle approves the parcel payment. Restricted to operators and admins.
// The payment must reference a parcel; shipment settlements use
// VerifyPaymentCommandHandler.
func (h ApproveParcelPaymentCommandHandler) Handle(ctx context.Context, cmd ApproveParcelPaymentCommand) error {
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

	if pmt.ParcelID() == nil {
		return errs.NewConflictError(
			fmt.Sprintf("payment %d does not settle a parcel", pmt.ID()),
		)
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

	parcelRepo := uow.ParcelRepository()

	prc, err := parcelRepo.Get(ctx, *pmt.ParcelID())
	if err != nil {
		return err
	}
	if err = prc.MoveToWarehouse(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, pmt); err != nil {
		return err
	}
	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}
	if err = parcelRepo.Update(ctx, prc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
