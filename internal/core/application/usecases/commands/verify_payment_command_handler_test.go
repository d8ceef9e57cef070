package commands_test

import (
	"errors"
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shipmentID := int64(11)
	pmt := testPayment(t, 5, 3, nil)
	inv := testInvoice(t, 3, invoice.StatusPending, &shipmentID, nil)
	shp := testShipmentAtOrigin(t, shipmentID)

	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		paymentRepo.On("Get", ctx, int64(5)).Return(pmt, nil).Once(),
		invoiceRepo.On("GetForUpdate", ctx, int64(3)).Return(inv, nil).Once(),
		paymentRepo.On("Update", ctx, pmt).Return(nil).Once(),
		invoiceRepo.On("Update", ctx, inv).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(shp, nil).Once(),
		shipmentRepo.On("Update", ctx, shp).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyPaymentCommandHandler(settlementUoWFactory{factory})
	cmd, err := commands.NewVerifyPaymentCommand(operatorActor(t), 5)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, payment.StatusVerified, pmt.Status())
	assert.Equal(t, invoice.StatusPaid, inv.Status())
	assert.Equal(t, shipment.StatusInTransit, shp.Status())

	uow.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	invoiceRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
}

func TestVerifyPaymentCommandHandler_Handle_RequiresElevatedRole(t *testing.T) {
	ctx := t.Context()

	factory := new(MockUoWFactory)

	handler := commands.NewVerifyPaymentCommandHandler(settlementUoWFactory{factory})
	cmd, err := commands.NewVerifyPaymentCommand(clientActor(t, testOwnerID), 5)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestVerifyPaymentCommandHandler_Handle_RollsBackWhenShipmentUpdateFails(t *testing.T) {
	ctx := t.Context()
	shipmentID := int64(11)
	pmt := testPayment(t, 5, 3, nil)
	inv := testInvoice(t, 3, invoice.StatusPending, &shipmentID, nil)
	shp := testShipmentAtOrigin(t, shipmentID)

	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("InvoiceRepository").Return(invoiceRepo).Once()
	paymentRepo.On("Get", ctx, int64(5)).Return(pmt, nil).Once()
	invoiceRepo.On("GetForUpdate", ctx, int64(3)).Return(inv, nil).Once()
	paymentRepo.On("Update", ctx, pmt).Return(nil).Once()
	invoiceRepo.On("Update", ctx, inv).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, shipmentID).Return(shp, nil).Once()
	shipmentRepo.On("Update", ctx, shp).Return(errors.New("connection reset")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyPaymentCommandHandler(settlementUoWFactory{factory})
	cmd, err := commands.NewVerifyPaymentCommand(operatorActor(t), 5)
	require.NoError(t, err)

	require.Error(t, handler.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestVerifyPaymentCommandHandler_Handle_AlreadySettledPayment(t *testing.T) {
	ctx := t.Context()
	pmt := testPayment(t, 5, 3, nil)
	require.NoError(t, pmt.Verify())
	inv := testInvoice(t, 3, invoice.StatusPaid, nil, nil)

	paymentRepo := new(MockPaymentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("InvoiceRepository").Return(invoiceRepo).Once()
	paymentRepo.On("Get", ctx, int64(5)).Return(pmt, nil).Once()
	invoiceRepo.On("GetForUpdate", ctx, int64(3)).Return(inv, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyPaymentCommandHandler(settlementUoWFactory{factory})
	cmd, err := commands.NewVerifyPaymentCommand(operatorActor(t), 5)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
