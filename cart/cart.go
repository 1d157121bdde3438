package cart

import "fmt"

// Direction selects which way a quantity adjustment goes.
type Direction string

const (
	Increment Direction = "increment"
	Decrement Direction = "decrement"
)

// LineItem is one cart entry: a product/weight pair and its quantity.
// Two weights of the same product are distinct line items.
type LineItem struct {
	Key       string  `json:"key"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"` // unit price
	Weight    string  `json:"weight"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// ItemKey builds the composite key distinguishing otherwise-identical
// products sold in different sizes, e.g. "4-500g".
func ItemKey(productID uint, weight string) string {
	return fmt.Sprintf("%d-%s", productID, weight)
}

// Cart holds one session's line items plus the drawer/selector UI state.
// Line items are the only source of truth; totals are always computed
// from them on read so they can never drift.
type Cart struct {
	items map[string]*LineItem
	order []string // insertion order of keys

	visible       bool // cart drawer open
	overlayActive bool // secondary overlay (e.g. mobile menu)
	selector      int  // staged quantity on product pages, min 1
}

func newCart() *Cart {
	return &Cart{
		items:    make(map[string]*LineItem),
		selector: 1,
	}
}

// Add merges quantity into an existing line item with the same composite
// key, or inserts a new one. Returns the resulting line item.
func (c *Cart) Add(item LineItem, quantity int) *LineItem {
	if quantity < 1 {
		quantity = 1
	}
	key := ItemKey(item.ProductID, item.Weight)
	if existing, ok := c.items[key]; ok {
		existing.Quantity += quantity
		return existing
	}
	item.Key = key
	item.Quantity = quantity
	c.items[key] = &item
	c.order = append(c.order, key)
	return &item
}

// Remove deletes the line item with the given key. Unknown keys are a
// no-op: the UI never shows a control for an item that is not there, but
// a stale request must not fault.
func (c *Cart) Remove(key string) {
	if _, ok := c.items[key]; !ok {
		return
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Adjust steps a line item's quantity by one. Decrementing an item at
// quantity 1 is a no-op; items are only ever removed via Remove.
// Unknown keys are a no-op. Reports whether anything changed.
func (c *Cart) Adjust(key string, dir Direction) bool {
	item, ok := c.items[key]
	if !ok {
		return false
	}
	switch dir {
	case Increment:
		item.Quantity++
		return true
	case Decrement:
		if item.Quantity > 1 {
			item.Quantity--
			return true
		}
	}
	return false
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, *c.items[key])
	}
	return out
}

// Item looks up a line item by composite key.
func (c *Cart) Item(key string) (LineItem, bool) {
	item, ok := c.items[key]
	if !ok {
		return LineItem{}, false
	}
	return *item, true
}

// TotalPrice is Σ unit price × quantity over all line items.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalQuantity is Σ quantity over all line items.
func (c *Cart) TotalQuantity() int {
	var total int
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) SetVisible(v bool)       { c.visible = v }
func (c *Cart) Visible() bool           { return c.visible }
func (c *Cart) SetOverlayActive(v bool) { c.overlayActive = v }
func (c *Cart) OverlayActive() bool     { return c.overlayActive }

// ScrollLocked reports whether page scrolling should be suspended: the
// cart drawer and the secondary overlay jointly gate it.
func (c *Cart) ScrollLocked() bool { return c.visible || c.overlayActive }

// Selector is the quantity staged on a product page before Add is called.
func (c *Cart) Selector() int { return c.selector }

func (c *Cart) IncrementSelector() int {
	c.selector++
	return c.selector
}

// DecrementSelector clamps at 1; a product page can never stage zero.
func (c *Cart) DecrementSelector() int {
	if c.selector > 1 {
		c.selector--
	}
	return c.selector
}

// ResetSelector returns the selector to its initial value, as after an add.
func (c *Cart) ResetSelector() { c.selector = 1 }
