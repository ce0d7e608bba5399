package cart

import (
	"sort"

	"github.com/terracotta-tales/terracotta/internal/model"
)

// MaxLineQty caps how many units of one dish a single order may carry.
const MaxLineQty = 10

// Totals are the derived aggregates of the cart. Always recomputed from the
// lines, never cached.
type Totals struct {
	Count    int
	Subtotal int64
}

// Cart is the in-memory collection of line items keyed by product id.
// Every view shares one instance; mutations go through the methods below so
// the qty >= 1 invariant holds at all times.
type Cart struct {
	lines map[model.ID]model.LineItem
}

func New() *Cart {
	return &Cart{lines: make(map[model.ID]model.LineItem)}
}

// FromItems builds a cart from previously persisted lines. Quantities are
// clamped into [1, MaxLineQty]; the store has already dropped anything
// malformed.
func FromItems(items []model.LineItem) *Cart {
	c := New()
	for _, it := range items {
		if it.Qty < 1 {
			continue
		}
		if it.Qty > MaxLineQty {
			it.Qty = MaxLineQty
		}
		c.lines[it.ID] = it
	}
	return c
}

// Add inserts a new line or raises the quantity of an existing one, capped
// at MaxLineQty. A qty below 1 counts as 1.
func (c *Cart) Add(item model.MenuItem, qty int) {
	if qty < 1 {
		qty = 1
	}
	if existing, ok := c.lines[item.ID]; ok {
		existing.Qty = min(MaxLineQty, existing.Qty+qty)
		c.lines[item.ID] = existing
		return
	}
	c.lines[item.ID] = model.LineItem{
		ID:         item.ID,
		Name:       item.Name,
		PriceCents: item.PriceCents,
		Qty:        min(MaxLineQty, qty),
	}
}

// Increase bumps a line by one, up to the cap. Reports whether the id was
// present.
func (c *Cart) Increase(id model.ID) bool {
	l, ok := c.lines[id]
	if !ok {
		return false
	}
	l.Qty = min(MaxLineQty, l.Qty+1)
	c.lines[id] = l
	return true
}

// Decrease lowers a line by one; at qty 1 the line is removed entirely.
func (c *Cart) Decrease(id model.ID) bool {
	l, ok := c.lines[id]
	if !ok {
		return false
	}
	l.Qty--
	if l.Qty <= 0 {
		delete(c.lines, id)
		return true
	}
	c.lines[id] = l
	return true
}

// Remove deletes a line unconditionally.
func (c *Cart) Remove(id model.ID) bool {
	if _, ok := c.lines[id]; !ok {
		return false
	}
	delete(c.lines, id)
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[model.ID]model.LineItem)
}

// Qty reports how many units of an id are in the cart; 0 when absent.
// Drives the per-item badges on the catalog views.
func (c *Cart) Qty(id model.ID) int {
	return c.lines[id].Qty
}

// Get returns a line by id.
func (c *Cart) Get(id model.ID) (model.LineItem, bool) {
	l, ok := c.lines[id]
	return l, ok
}

// Len is the number of distinct lines (not units).
func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a snapshot of the cart sorted by dish name, the display
// order everywhere the cart is shown.
func (c *Cart) Lines() []model.LineItem {
	out := make([]model.LineItem, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Totals recomputes count and subtotal from scratch on every call.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, l := range c.lines {
		t.Count += l.Qty
		t.Subtotal += l.LineTotal()
	}
	return t
}
