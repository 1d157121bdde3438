package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moringa500() LineItem {
	return LineItem{ProductID: 1, Name: "Moringa Powder", Price: 100, Weight: "500g", Image: "/uploads/products/moringa.webp"}
}

func TestAddMergesOnCompositeKey(t *testing.T) {
	c := newCart()

	c.Add(moringa500(), 2)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "1-500g", c.Items()[0].Key)
	assert.Equal(t, 2, c.Items()[0].Quantity)
	assert.Equal(t, 200.0, c.TotalPrice())
	assert.Equal(t, 2, c.TotalQuantity())

	// Same product, same weight: quantity accumulates, no second item.
	c.Add(moringa500(), 3)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 5, c.Items()[0].Quantity)
	assert.Equal(t, 500.0, c.TotalPrice())
	assert.Equal(t, 5, c.TotalQuantity())
}

func TestAddDistinguishesWeights(t *testing.T) {
	c := newCart()
	c.Add(moringa500(), 1)

	kg := moringa500()
	kg.Weight = "1kg"
	kg.Price = 180
	c.Add(kg, 2)

	require.Len(t, c.Items(), 2)
	assert.Equal(t, "1-500g", c.Items()[0].Key)
	assert.Equal(t, "1-1kg", c.Items()[1].Key)
	assert.Equal(t, 100.0+2*180, c.TotalPrice())
	assert.Equal(t, 3, c.TotalQuantity())
}

func TestTotalsOverManyAdds(t *testing.T) {
	c := newCart()
	var wantPrice float64
	var wantQty int
	for i := uint(1); i <= 8; i++ {
		item := LineItem{ProductID: i, Name: "Product", Price: float64(i * 10), Weight: "250g"}
		qty := int(i%3) + 1
		c.Add(item, qty)
		wantPrice += item.Price * float64(qty)
		wantQty += qty
	}
	assert.Equal(t, wantPrice, c.TotalPrice())
	assert.Equal(t, wantQty, c.TotalQuantity())
}

func TestRemoveUnknownKeyIsNoop(t *testing.T) {
	c := newCart()
	c.Add(moringa500(), 2)

	c.Remove("99-1kg")

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 200.0, c.TotalPrice())
	assert.Equal(t, 2, c.TotalQuantity())
}

func TestRemoveDeletesWholeLine(t *testing.T) {
	c := newCart()
	c.Add(moringa500(), 3)
	c.Remove("1-500g")

	assert.Empty(t, c.Items())
	assert.Equal(t, 0.0, c.TotalPrice())
	assert.Equal(t, 0, c.TotalQuantity())
}

func TestDecrementAtOneIsNoop(t *testing.T) {
	c := newCart()
	c.Add(moringa500(), 1)

	changed := c.Adjust("1-500g", Decrement)

	assert.False(t, changed)
	item, ok := c.Item("1-500g")
	require.True(t, ok)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 100.0, c.TotalPrice())
	assert.Equal(t, 1, c.TotalQuantity())
}

func TestIncrementThenDecrementRoundTrips(t *testing.T) {
	c := newCart()
	c.Add(moringa500(), 2)
	priceBefore, qtyBefore := c.TotalPrice(), c.TotalQuantity()

	assert.True(t, c.Adjust("1-500g", Increment))
	assert.True(t, c.Adjust("1-500g", Decrement))

	assert.Equal(t, priceBefore, c.TotalPrice())
	assert.Equal(t, qtyBefore, c.TotalQuantity())
}

func TestAdjustUnknownKeyIsNoop(t *testing.T) {
	c := newCart()
	assert.False(t, c.Adjust("7-250g", Increment))
	assert.Equal(t, 0, c.TotalQuantity())
}

func TestSelectorClampsAtOne(t *testing.T) {
	c := newCart()
	assert.Equal(t, 1, c.Selector())
	assert.Equal(t, 1, c.DecrementSelector())
	assert.Equal(t, 2, c.IncrementSelector())
	assert.Equal(t, 3, c.IncrementSelector())
	c.ResetSelector()
	assert.Equal(t, 1, c.Selector())
}

func TestScrollLockFollowsEitherFlag(t *testing.T) {
	c := newCart()
	assert.False(t, c.ScrollLocked())

	c.SetVisible(true)
	assert.True(t, c.ScrollLocked())

	c.SetOverlayActive(true)
	c.SetVisible(false)
	assert.True(t, c.ScrollLocked())

	c.SetOverlayActive(false)
	assert.False(t, c.ScrollLocked())
}

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore()

	s.With("session-a", func(c *Cart) { c.Add(moringa500(), 2) })
	s.With("session-b", func(c *Cart) {
		assert.Equal(t, 0, c.TotalQuantity())
	})
	s.With("session-a", func(c *Cart) {
		assert.Equal(t, 2, c.TotalQuantity())
	})

	s.Drop("session-a")
	s.With("session-a", func(c *Cart) {
		assert.Equal(t, 0, c.TotalQuantity())
	})
}
