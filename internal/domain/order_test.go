package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAddItem(t *testing.T) {
	t.Run("rejects non-positive quantity and leaves items unchanged", func(t *testing.T) {
		o := NewOrder(1, time.Now())
		require.NoError(t, o.AddItem(OrderItem{ProductID: 1, Quantity: 1, UnitPrice: 5}))

		for _, qty := range []int{0, -1} {
			err := o.AddItem(OrderItem{ProductID: 2, Quantity: qty, UnitPrice: 5})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Len(t, o.Items, 1)
		}
	})

	t.Run("append increases total by rounded subtotal", func(t *testing.T) {
		o := NewOrder(1, time.Now())
		require.NoError(t, o.AddItem(OrderItem{ProductID: 1, Quantity: 3, UnitPrice: 3.333}))
		assert.Equal(t, 10.0, o.Total())

		require.NoError(t, o.AddItem(OrderItem{ProductID: 2, Quantity: 1, UnitPrice: 2.5}))
		assert.Equal(t, 12.5, o.Total())
	})

	t.Run("insertion order is line order", func(t *testing.T) {
		o := NewOrder(1, time.Now())
		for _, pid := range []uint{3, 1, 2} {
			require.NoError(t, o.AddItem(OrderItem{ProductID: pid, Quantity: 1, UnitPrice: 1}))
		}
		assert.Equal(t, uint(3), o.Items[0].ProductID)
		assert.Equal(t, uint(1), o.Items[1].ProductID)
		assert.Equal(t, uint(2), o.Items[2].ProductID)
	})
}

func TestOrderItemSubtotal(t *testing.T) {
	it := OrderItem{ProductID: 1, Quantity: 3, UnitPrice: 0.115}
	assert.Equal(t, 0.35, it.Subtotal())
}

func TestOrderDefaults(t *testing.T) {
	o := NewOrder(7, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, OrderStatusNew, o.Status)
	assert.Equal(t, 0.0, o.Total())
	assert.Empty(t, o.Items)
}
