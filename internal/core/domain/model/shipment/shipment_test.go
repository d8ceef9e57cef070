package shipment_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecipient(t *testing.T) shipment.Recipient {
	t.Helper()
	r, err := shipment.NewRecipient("Ana Morales", "Panama City", "Calle 50, Edificio Global", "+507 6000-0000")
	require.NoError(t, err)
	return r
}

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	cost, err := kernel.NewMoneyFromFloat(25)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		"ENV-001",
		"Documents",
		decimal.NewFromInt(10),
		decimal.NewFromInt(0),
		cost,
		newTestRecipient(t),
		7,
		time.Now(),
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("valid shipment starts at origin", func(t *testing.T) {
		s := newTestShipment(t)

		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.StatusAtOrigin, s.Status())
		assert.Nil(t, s.DeliveredAt())
		assert.Equal(t, "25.00", s.Cost().String())
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		cost, _ := kernel.NewMoneyFromFloat(25)
		_, err := shipment.NewShipment(
			"ENV-001", "Documents", decimal.Zero, decimal.Zero,
			cost, newTestRecipient(t), 7, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unconstructed recipient", func(t *testing.T) {
		cost, _ := kernel.NewMoneyFromFloat(25)
		_, err := shipment.NewShipment(
			"ENV-001", "Documents", decimal.NewFromInt(1), decimal.Zero,
			cost, shipment.Recipient{}, 7, time.Now(),
		)
		require.ErrorIs(t, err, shipment.ErrRecipientIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestNewRecipient(t *testing.T) {
	t.Run("requires name city and address", func(t *testing.T) {
		_, err := shipment.NewRecipient("", "City", "Street", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = shipment.NewRecipient("Name", "", "Street", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = shipment.NewRecipient("Name", "City", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("phone is optional", func(t *testing.T) {
		r, err := shipment.NewRecipient("Name", "City", "Street", "")
		require.NoError(t, err)
		assert.Empty(t, r.Phone())
	})
}

func TestShipment_Dispatch(t *testing.T) {
	s := newTestShipment(t)

	require.NoError(t, s.Dispatch())
	assert.Equal(t, shipment.StatusInTransit, s.Status())

	// Dispatching twice is invalid.
	require.Error(t, s.Dispatch())
}

func TestShipment_MarkDelivered(t *testing.T) {
	t.Run("requires in transit", func(t *testing.T) {
		s := newTestShipment(t)
		require.Error(t, s.MarkDelivered(time.Now()))
	})

	t.Run("records delivery time", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Dispatch())

		at := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
		require.NoError(t, s.MarkDelivered(at))

		assert.Equal(t, shipment.StatusDelivered, s.Status())
		require.NotNil(t, s.DeliveredAt())
		assert.Equal(t, at, *s.DeliveredAt())
	})
}

func TestShipment_RejectPayment(t *testing.T) {
	t.Run("allowed at origin", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.RejectPayment())
		assert.Equal(t, shipment.StatusPaymentRejected, s.Status())
	})

	t.Run("rejected once in transit", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Dispatch())
		require.Error(t, s.RejectPayment())
	})
}

func TestRestoreShipment(t *testing.T) {
	cost, _ := kernel.NewMoneyFromFloat(25)
	at := time.Now()

	s, err := shipment.RestoreShipment(
		9, "ENV-002", "Clothes", decimal.NewFromInt(4), decimal.NewFromInt(200),
		cost, shipment.StatusInTransit, newTestRecipient(t), 7, at, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(9), s.ID())
	assert.Equal(t, shipment.StatusInTransit, s.Status())

	_, err = shipment.RestoreShipment(
		0, "ENV-002", "Clothes", decimal.NewFromInt(4), decimal.Zero,
		cost, shipment.StatusInTransit, newTestRecipient(t), 7, at, nil,
	)
	require.Error(t, err)
}
