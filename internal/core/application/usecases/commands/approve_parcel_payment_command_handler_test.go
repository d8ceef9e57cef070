package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveParcelPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	parcelID := int64(9)
	pmt := testPayment(t, 5, 3, &parcelID)
	inv := testInvoice(t, 3, invoice.StatusPending, nil, &parcelID)
	prc := testParcel(t, parcelID, parcel.StatusReceived)

	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		paymentRepo.On("Get", ctx, int64(5)).Return(pmt, nil).Once(),
		invoiceRepo.On("GetForUpdate", ctx, int64(3)).Return(inv, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).Return(prc, nil).Once(),
		paymentRepo.On("Update", ctx, pmt).Return(nil).Once(),
		invoiceRepo.On("Update", ctx, inv).Return(nil).Once(),
		parcelRepo.On("Update", ctx, prc).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveParcelPaymentCommandHandler(settlementUoWFactory{factory})
	cmd, err := commands.NewApproveParcelPaymentCommand(operatorActor(t), 5)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, payment.StatusVerified, pmt.Status())
	assert.Equal(t, invoice.StatusPaid, inv.Status())
	assert.Equal(t, parcel.StatusInWarehouse, prc.Status())

	uow.AssertExpectations(t)
}

func TestApproveParcelPaymentCommandHandler_Handle_NonParcelPayment(t *testing.T) {
	ctx := t.Context()
	pmt := testPayment(t, 5, 3, nil)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("InvoiceRepository").Return(new(MockInvoiceRepository)).Once()
	paymentRepo.On("Get", ctx, int64(5)).Return(pmt, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveParcelPaymentCommandHandler(settlementUoWFactory{factory})
	cmd, err := commands.NewApproveParcelPaymentCommand(operatorActor(t), 5)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
