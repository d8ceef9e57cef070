package kernel_test

import (
	"testing"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("accepts positive amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(12.34)
		require.NoError(t, err)
		assert.Equal(t, "12.34", m.String())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Round_HalfUp(t *testing.T) {
	testCases := []struct {
		input    float64
		expected string
	}{
		{2.005, "2.01"},
		{2.004, "2.00"},
		{2.675, "2.68"},
		{55.0, "55.00"},
	}

	for _, tc := range testCases {
		m, err := kernel.NewMoneyFromFloat(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, m.Round().String())
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	base, _ := kernel.NewMoneyFromFloat(5)
	freight, _ := kernel.NewMoneyFromFloat(20)

	total := base.Add(freight)
	assert.Equal(t, "25.00", total.String())

	doubled := freight.Mul(decimal.NewFromInt(2))
	assert.Equal(t, "40.00", doubled.String())

	assert.True(t, freight.GreaterThan(base))
	assert.False(t, base.GreaterThan(freight))
}

func TestMoney_WithinCents(t *testing.T) {
	a, _ := kernel.NewMoneyFromFloat(50.00)
	b, _ := kernel.NewMoneyFromFloat(50.01)
	c, _ := kernel.NewMoneyFromFloat(50.02)

	assert.True(t, a.WithinCents(b, 1))
	assert.False(t, a.WithinCents(c, 1))
	assert.True(t, a.WithinCents(a, 0))
}

func TestMoney_ZeroValueIsValid(t *testing.T) {
	var m kernel.Money
	require.NoError(t, m.Validate())
	assert.True(t, m.IsZero())
	assert.True(t, m.IsEqual(kernel.ZeroMoney()))
}
