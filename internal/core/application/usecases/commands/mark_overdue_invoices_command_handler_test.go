package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/invoice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOverdueInvoicesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	first := testInvoice(t, 3, invoice.StatusPending, nil, nil)
	second := testInvoice(t, 4, invoice.StatusPending, nil, nil)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetAllPendingPastDue", ctx, mock.AnythingOfType("time.Time")).
			Return([]*invoice.Invoice{first, second}, nil).Once(),
		invoiceRepo.On("Update", ctx, first).Return(nil).Once(),
		invoiceRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkOverdueInvoicesCommandHandler(invoiceUoWFactory{factory})

	flagged, err := handler.Handle(ctx, commands.NewMarkOverdueInvoicesCommand())
	require.NoError(t, err)

	assert.Equal(t, 2, flagged)
	assert.Equal(t, invoice.StatusOverdue, first.Status())
	assert.Equal(t, invoice.StatusOverdue, second.Status())

	uow.AssertExpectations(t)
	invoiceRepo.AssertExpectations(t)
}

func TestMarkOverdueInvoicesCommandHandler_Handle_NothingPastDue(t *testing.T) {
	ctx := t.Context()

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(invoiceRepo).Once()
	invoiceRepo.On("GetAllPendingPastDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*invoice.Invoice{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkOverdueInvoicesCommandHandler(invoiceUoWFactory{factory})

	flagged, err := handler.Handle(ctx, commands.NewMarkOverdueInvoicesCommand())
	require.NoError(t, err)
	assert.Zero(t, flagged)
}
