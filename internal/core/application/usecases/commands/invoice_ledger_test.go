package commands_test

import (
	"fmt"
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/invoice"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ledgerRequest(t *testing.T, amount float64) commands.LedgerRequest {
	t.Helper()
	return commands.LedgerRequest{
		NaturalKey:  "ENV-001",
		Description: "Shipping ENV-001",
		OwnerID:     testOwnerID,
		Amount:      money(t, amount),
		FormatNumber: func(seq int64) string {
			return fmt.Sprintf("FAC-2026-%06d", seq)
		},
		DueInDays: 15,
	}
}

func TestInvoiceLedger_Upsert_IssuesNewInvoice(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	invoiceRepo := new(MockInvoiceRepository)
	userRepo := new(MockUserRepository)

	mock.InOrder(
		userRepo.On("Get", ctx, testOwnerID).Return(testUser(t, testOwnerID), nil).Once(),
		invoiceRepo.On("GetByNaturalKeyForUpdate", ctx, "ENV-001").
			Return(nil, errs.NewObjectNotFoundError("naturalKey", "ENV-001")).Once(),
		invoiceRepo.On("Count", ctx).Return(int64(41), nil).Once(),
		invoiceRepo.On("Add", ctx, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
	)

	inv, err := commands.NewInvoiceLedger().Upsert(ctx, invoiceRepo, userRepo, ledgerRequest(t, 55), now)
	require.NoError(t, err)

	assert.Equal(t, "FAC-2026-000042", inv.Number())
	assert.Equal(t, invoice.StatusPending, inv.Status())
	assert.Equal(t, "55.00", inv.Amount().String())
	assert.Equal(t, now, inv.IssueDate())
	assert.Equal(t, now.AddDate(0, 0, 15), inv.DueDate())

	invoiceRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestInvoiceLedger_Upsert_CorrectsExistingAmount(t *testing.T) {
	ctx := t.Context()
	existing := testInvoice(t, 3, invoice.StatusPending, nil, nil)

	invoiceRepo := new(MockInvoiceRepository)
	userRepo := new(MockUserRepository)

	mock.InOrder(
		userRepo.On("Get", ctx, testOwnerID).Return(testUser(t, testOwnerID), nil).Once(),
		invoiceRepo.On("GetByNaturalKeyForUpdate", ctx, "ENV-001").Return(existing, nil).Once(),
		invoiceRepo.On("Update", ctx, existing).Return(nil).Once(),
	)

	inv, err := commands.NewInvoiceLedger().Upsert(ctx, invoiceRepo, userRepo, ledgerRequest(t, 60), time.Now())
	require.NoError(t, err)

	assert.Equal(t, "60.00", inv.Amount().String())
	assert.Equal(t, invoice.StatusPending, inv.Status())

	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceLedger_Upsert_NoOpWithinTolerance(t *testing.T) {
	ctx := t.Context()
	existing := testInvoice(t, 3, invoice.StatusPending, nil, nil)

	invoiceRepo := new(MockInvoiceRepository)
	userRepo := new(MockUserRepository)

	userRepo.On("Get", ctx, testOwnerID).Return(testUser(t, testOwnerID), nil).Once()
	invoiceRepo.On("GetByNaturalKeyForUpdate", ctx, "ENV-001").Return(existing, nil).Once()

	inv, err := commands.NewInvoiceLedger().Upsert(ctx, invoiceRepo, userRepo, ledgerRequest(t, 55.01), time.Now())
	require.NoError(t, err)

	assert.Equal(t, "55.00", inv.Amount().String())
	invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInvoiceLedger_Upsert_RefusesToCorrectSettledInvoice(t *testing.T) {
	ctx := t.Context()
	existing := testInvoice(t, 3, invoice.StatusPaid, nil, nil)

	invoiceRepo := new(MockInvoiceRepository)
	userRepo := new(MockUserRepository)

	userRepo.On("Get", ctx, testOwnerID).Return(testUser(t, testOwnerID), nil).Once()
	invoiceRepo.On("GetByNaturalKeyForUpdate", ctx, "ENV-001").Return(existing, nil).Once()

	_, err := commands.NewInvoiceLedger().Upsert(ctx, invoiceRepo, userRepo, ledgerRequest(t, 60), time.Now())
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestInvoiceLedger_Upsert_UnresolvableOwner(t *testing.T) {
	ctx := t.Context()

	invoiceRepo := new(MockInvoiceRepository)
	userRepo := new(MockUserRepository)

	userRepo.On("Get", ctx, testOwnerID).
		Return(nil, errs.NewObjectNotFoundError("userId", testOwnerID)).Once()

	_, err := commands.NewInvoiceLedger().Upsert(ctx, invoiceRepo, userRepo, ledgerRequest(t, 55), time.Now())
	require.ErrorIs(t, err, errs.ErrInvalidOwner)
	invoiceRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
