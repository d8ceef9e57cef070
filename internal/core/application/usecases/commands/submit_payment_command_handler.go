package commands

import (
	"context"
	"fmt"
	"time"

	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

// SubmitPaymentCommandHandler handles payment submission. The invoice row is
// locked for the duration of the transaction so a concurrent ledger
// correction or settlement cannot slip between the payability check and the
// insert.
type SubmitPaymentCommandHandler struct {
	uowFactory  PaymentUoWFactory
	accessGuard services.AccessGuard
}

// NewSubmitPaymentCommandHandler creates a handler for payment submission.
func NewSubmitPaymentCommandHandler(uowFactory PaymentUoWFactory) SubmitPaymentCommandHandler {
	return SubmitPaymentCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle records a pending payment against a payable invoice and returns it
// with its generated receipt number.
//
// Preconditions:
//   - the actor passes the access guard against the invoice owner
//   - the invoice is payable (pending or overdue)
//   - the amount does not exceed the invoice amount
func (h SubmitPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitPaymentCommand,
) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inv, err := uow.InvoiceRepository().GetForUpdate(ctx, cmd.InvoiceID())
	if err != nil {
		return nil, err
	}

	if err = h.accessGuard.Authorize(cmd.Actor(), inv.OwnerID()); err != nil {
		return nil, err
	}

	if !inv.Status().IsPayable() {
		return nil, errs.NewConflictError(
			fmt.Sprintf("invoice %s is %s and cannot be paid", inv.Number(), inv.Status()),
		)
	}

	if cmd.Amount().GreaterThan(inv.Amount()) {
		return nil, errs.NewValueIsOutOfRangeError("amount", cmd.Amount(), 0, inv.Amount())
	}

	newPayment, err := payment.NewPayment(
		inv.ID(),
		cmd.Amount(),
		cmd.Method(),
		cmd.Reference(),
		cmd.Note(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if parcelID := inv.ParcelID(); parcelID != nil {
		if err = newPayment.AttachParcel(*parcelID); err != nil {
			return nil, err
		}
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newPayment, nil
}
