package commands_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testOwnerID int64 = 7

func operatorActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(1, kernel.RoleOperator)
	require.NoError(t, err)
	return actor
}

func clientActor(t *testing.T, id int64) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleClient)
	require.NoError(t, err)
	return actor
}

func money(t *testing.T, value float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(value)
	require.NoError(t, err)
	return m
}

func testUser(t *testing.T, id int64) *user.User {
	t.Helper()
	u, err := user.RestoreUser(id, "Carlos Jimenez", "carlos@example.com", kernel.RoleClient)
	require.NoError(t, err)
	return u
}

func testInvoice(
	t *testing.T,
	id int64,
	status invoice.Status,
	shipmentID, parcelID *int64,
) *invoice.Invoice {
	t.Helper()
	issued := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	inv, err := invoice.RestoreInvoice(
		id, "FAC-2026-000001", "ENV-001", "Shipping ENV-001", money(t, 55),
		status, testOwnerID, issued, issued.AddDate(0, 0, 15), shipmentID, parcelID,
	)
	require.NoError(t, err)
	return inv
}

func testPayment(t *testing.T, id, invoiceID int64, parcelID *int64) *payment.Payment {
	t.Helper()
	p, err := payment.RestorePayment(
		id, invoiceID, parcelID, money(t, 55), payment.MethodCard, payment.StatusPending,
		"AUTH-1", "RCP-test", "", "", time.Now(),
	)
	require.NoError(t, err)
	return p
}

func testShipmentAtOrigin(t *testing.T, id int64) *shipment.Shipment {
	t.Helper()
	recipient, err := shipment.NewRecipient("Ana Morales", "Panama City", "Calle 50", "")
	require.NoError(t, err)

	s, err := shipment.RestoreShipment(
		id, "ENV-001", "Documents", decimal.NewFromInt(10), decimal.Zero,
		money(t, 55), shipment.StatusAtOrigin, recipient, testOwnerID, time.Now(), nil,
	)
	require.NoError(t, err)
	return s
}

func testParcel(t *testing.T, id int64, status parcel.Status) *parcel.Parcel {
	t.Helper()
	p, err := parcel.RestoreParcel(
		id, "PKG-001", "Electronics", decimal.NewFromInt(5), decimal.NewFromInt(150),
		true, status, testOwnerID, time.Now(),
	)
	require.NoError(t, err)
	return p
}
