package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvtran/mindbrew/internal/client/models"
)

func latte() models.Item {
	return models.Item{ID: "i1", StoreID: "s1", Name: "Latte", Price: 4.5}
}

func muffin() models.Item {
	return models.Item{ID: "i2", StoreID: "s1", Name: "Muffin", Price: 3.0}
}

func TestAdd_NewLineThenIncrement(t *testing.T) {
	c := New()

	c.Add(latte())
	c.Add(latte())
	c.Add(muffin())

	items := c.Items()
	require.Len(t, items, 2)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, 1, items[1].Quantity)
}

func TestRemove_DropsWholeLine(t *testing.T) {
	c := New()
	c.Add(latte())
	c.Add(latte())
	c.Add(muffin())

	c.Remove("i1")

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, "i2", items[0].ID)
}

func TestDecrement_RemovesLineAtZero(t *testing.T) {
	c := New()
	c.Add(latte())
	c.Add(latte())

	c.Decrement("i1")
	require.Equal(t, 1, c.Items()[0].Quantity)

	c.Decrement("i1")
	require.Empty(t, c.Items())

	// decrementing an absent item is a no-op
	c.Decrement("i1")
	require.Empty(t, c.Items())
}

func TestTotal_SumsPriceTimesQuantity(t *testing.T) {
	c := New()
	c.Add(latte())
	c.Add(latte())
	c.Add(muffin())

	require.InDelta(t, 12.0, c.Total(), 1e-9)
}

func TestClear_EmptiesCart(t *testing.T) {
	c := New()
	c.Add(latte())
	c.Clear()
	require.Empty(t, c.Items())
	require.Zero(t, c.Total())
}

func TestCheckoutDraft_SnapshotsWithoutClearing(t *testing.T) {
	c := New()
	c.Add(latte())

	d := c.CheckoutDraft()
	require.NotEmpty(t, d.ID)
	require.Len(t, d.Lines, 1)
	require.InDelta(t, 4.5, d.Total, 1e-9)

	// cart unchanged; draft ids are unique per call
	require.Len(t, c.Items(), 1)
	require.NotEqual(t, d.ID, c.CheckoutDraft().ID)
}
