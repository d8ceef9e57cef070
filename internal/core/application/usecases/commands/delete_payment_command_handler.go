package commands

import (
	"context"
	"fmt"

	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

// DeletePaymentCommandHandler deletes a payment that is still pending.
// Settled payments are part of the audit trail and can never be removed.
type DeletePaymentCommandHandler struct {
	uowFactory  PaymentUoWFactory
	accessGuard services.AccessGuard
}

// NewDeletePaymentCommandHandler creates a handler for payment deletion.
func NewDeletePaymentCommandHandler(uowFactory PaymentUoWFactory) DeletePaymentCommandHandler {
	return DeletePaymentCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle deletes the pending payment. The caller must own the settled
// invoice or hold an elevated role.
func (h DeletePaymentCommandHandler) Handle(ctx context.Context, cmd DeletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
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

	pmt, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	inv, err := uow.InvoiceRepository().Get(ctx, pmt.InvoiceID())
	if err != nil {
		return err
	}

	if err = h.accessGuard.Authorize(cmd.Actor(), inv.OwnerID()); err != nil {
		return err
	}

	if !pmt.IsPending() {
		return errs.NewConflictError(
			fmt.Sprintf("payment %d is %s and cannot be deleted", pmt.ID(), pmt.Status()),
		)
	}

	if err = paymentRepo.Delete(ctx, pmt.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
