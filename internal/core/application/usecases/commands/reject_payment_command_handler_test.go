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

func TestRejectPaymentCommandHandler_Handle_ParcelSettlement(t *testing.T) {
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
		paymentRepo.On("Update", ctx, pmt).Return(nil).Once(),
		invoiceRepo.On("Update", ctx, inv).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).Return(prc, nil).Once(),
		parcelRepo.On("Update", ctx, prc).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectPaymentCommandHandler(settlementUoWFactory{factory})
	cmd, err := commands.NewRejectPaymentCommand(operatorActor(t), 5, "insufficient funds")
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, payment.StatusRejected, pmt.Status())
	assert.Equal(t, "insufficient funds", pmt.Reason())
	assert.Equal(t, invoice.StatusRejected, inv.Status())
	assert.Equal(t, parcel.StatusPaymentRejected, prc.Status())

	uow.AssertExpectations(t)
}

func TestRejectPaymentCommandHandler_Handle_RequiresElevatedRole(t *testing.T) {
	factory := new(MockUoWFactory)

	handler := commands.NewRejectPaymentCommandHandler(settlementUoWFactory{factory})
	cmd, err := commands.NewRejectPaymentCommand(clientActor(t, testOwnerID), 5, "late")
	require.NoError(t, err)

	err = handler.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestNewRejectPaymentCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewRejectPaymentCommand(operatorActor(t), 5, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
