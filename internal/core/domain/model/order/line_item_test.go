package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestSubtotal(t *testing.T) {
	got, err := order.Subtotal(money(t, "12.50"), 3)
	require.NoError(t, err)
	assert.Equal(t, "37.50", got.String())

	_, err = order.Subtotal(money(t, "12.50"), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.Subtotal(kernel.Money{}, 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTotal_Empty(t *testing.T) {
	assert.True(t, order.Total(nil).IsZero())
}

func TestNewLineItem(t *testing.T) {
	id, menuItemID := kernel.NewUUID(), kernel.NewUUID()

	line, err := order.NewLineItem(id, menuItemID, money(t, "0.10"), 3)

	require.NoError(t, err)
	require.NoError(t, line.Validate())
	assert.True(t, line.ID().IsEqual(id))
	assert.True(t, line.MenuItemID().IsEqual(menuItemID))
	assert.Equal(t, 3, line.Quantity())
	assert.Equal(t, "0.30", line.Subtotal().String())
}

func TestNewLineItem_InvalidInput(t *testing.T) {
	_, err := order.NewLineItem(kernel.UUID{}, kernel.UUID{}, money(t, "1.00"), -1)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("accepts consistent subtotal", func(t *testing.T) {
		line, err := order.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), money(t, "2.50"), 2, money(t, "5.00"))
		require.NoError(t, err)
		assert.Equal(t, "5.00", line.Subtotal().String())
	})

	t.Run("rejects drifted subtotal", func(t *testing.T) {
		_, err := order.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), money(t, "2.50"), 2, money(t, "4.99"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLineItem_ZeroValueIsNotConstructed(t *testing.T) {
	var line order.LineItem
	require.ErrorIs(t, line.Validate(), order.ErrLineItemIsNotConstructed)
}
