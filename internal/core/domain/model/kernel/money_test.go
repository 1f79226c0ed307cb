package kernel_test

import (
	"testing"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("parses and formats", func(t *testing.T) {
		m, err := kernel.MoneyFromString("3")

		require.NoError(t, err)
		assert.Equal(t, "3.00", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects non decimals", func(t *testing.T) {
		_, err := kernel.MoneyFromString("two euros")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects sub-cent amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromString("2.005")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("trailing zeros are not extra precision", func(t *testing.T) {
		m, err := kernel.MoneyFromString("2.500")

		require.NoError(t, err)
		assert.Equal(t, "2.50", m.String())
	})

	t.Run("upper bound", func(t *testing.T) {
		m, err := kernel.MoneyFromString("999999999999.99")
		require.NoError(t, err)
		assert.Equal(t, "999999999999.99", m.String())

		_, err = kernel.MoneyFromString("1000000000000")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("validate catches computed amounts out of range", func(t *testing.T) {
		sum := kernel.MustMoney("999999999999.99").Add(kernel.MustMoney("0.01"))

		require.ErrorIs(t, sum.Validate(), errs.ErrValueIsOutOfRange)
		require.NoError(t, kernel.MustMoney("0.01").Times(3).Validate())
	})

	t.Run("arithmetic", func(t *testing.T) {
		total := kernel.MustMoney("2.00").Times(10).Add(kernel.MustMoney("3.00").Times(5))

		assert.True(t, total.IsEqual(kernel.MustMoney("35")))
		assert.True(t, kernel.MustMoney("9.99").Times(0).IsEqual(kernel.ZeroMoney()))
		assert.True(t, kernel.MustMoney("9.99").Times(-3).IsEqual(kernel.ZeroMoney()))
	})
}
