package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracotta-tales/terracotta/internal/model"
)

var (
	prawn = model.MenuItem{ID: "7", Name: "Tandoori Prawn Skewers", PriceCents: 45000}
	chaap = model.MenuItem{ID: "3", Name: "Boneless Chicken Chaap", PriceCents: 32000}
	soup  = model.MenuItem{ID: "5", Name: "Cream of Mushroom Soup", PriceCents: 18000}
)

// totalsMatch recomputes the aggregates by hand from the lines and compares
// them with Totals().
func totalsMatch(t *testing.T, c *Cart) {
	t.Helper()
	var count int
	var subtotal int64
	for _, l := range c.Lines() {
		count += l.Qty
		subtotal += l.PriceCents * int64(l.Qty)
	}
	got := c.Totals()
	assert.Equal(t, count, got.Count)
	assert.Equal(t, subtotal, got.Subtotal)
}

func TestCart_AddTwice(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(prawn, 1)
	c.Add(prawn, 1)

	got := c.Totals()
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, int64(90000), got.Subtotal)
	assert.Equal(t, "BDT 900", model.FormatPrice(got.Subtotal))
	assert.Equal(t, 1, c.Len())
}

func TestCart_TotalsHoldUnderAnySequence(t *testing.T) {
	t.Parallel()

	c := New()
	steps := []func(){
		func() { c.Add(prawn, 2) },
		func() { c.Add(chaap, 1) },
		func() { c.Increase(prawn.ID) },
		func() { c.Add(soup, 5) },
		func() { c.Decrease(chaap.ID) },
		func() { c.Increase(soup.ID) },
		func() { c.Remove(soup.ID) },
		func() { c.Decrease(prawn.ID) },
		func() { c.Increase("missing") },
		func() { c.Add(chaap, 3) },
	}
	for _, step := range steps {
		step()
		totalsMatch(t, c)
	}
}

func TestCart_DecreaseAtOneRemovesLine(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(prawn, 1)
	require.True(t, c.Decrease(prawn.ID))

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Totals{}, c.Totals())
	assert.Equal(t, 0, c.Qty(prawn.ID))
	_, ok := c.Get(prawn.ID)
	assert.False(t, ok)
}

func TestCart_QuantityCap(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(prawn, 7)
	c.Add(prawn, 7)
	assert.Equal(t, MaxLineQty, c.Qty(prawn.ID))

	for i := 0; i < 5; i++ {
		c.Increase(prawn.ID)
	}
	assert.Equal(t, MaxLineQty, c.Qty(prawn.ID))

	c2 := New()
	c2.Add(chaap, 25)
	assert.Equal(t, MaxLineQty, c2.Qty(chaap.ID))
}

func TestCart_AddNormalizesQty(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(prawn, 0)
	assert.Equal(t, 1, c.Qty(prawn.ID))
	c.Add(chaap, -3)
	assert.Equal(t, 1, c.Qty(chaap.ID))
}

func TestCart_LinesSortedByName(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(prawn, 1)
	c.Add(chaap, 1)
	c.Add(soup, 1)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "Boneless Chicken Chaap", lines[0].Name)
	assert.Equal(t, "Cream of Mushroom Soup", lines[1].Name)
	assert.Equal(t, "Tandoori Prawn Skewers", lines[2].Name)
}

func TestCart_RemoveAndClear(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(prawn, 2)
	c.Add(chaap, 1)

	require.True(t, c.Remove(prawn.ID))
	assert.False(t, c.Remove(prawn.ID))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Totals{}, c.Totals())
}

func TestFromItems_ClampsAndDrops(t *testing.T) {
	t.Parallel()

	c := FromItems([]model.LineItem{
		{ID: "7", Name: "Tandoori Prawn Skewers", PriceCents: 45000, Qty: 99},
		{ID: "3", Name: "Boneless Chicken Chaap", PriceCents: 32000, Qty: 0},
		{ID: "5", Name: "Cream of Mushroom Soup", PriceCents: 18000, Qty: 2},
	})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, MaxLineQty, c.Qty("7"))
	assert.Equal(t, 0, c.Qty("3"))
	assert.Equal(t, 2, c.Qty("5"))
}
