package cart

import (
	"testing"

	"github.com/plugah603/plugah-api/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hoodie = catalog.Entry{ID: "1", Name: "Unit Hoodie", Price: 120, RequiresSize: true}
	patch  = catalog.Entry{ID: "5", Name: "Unit Patch", Price: 20}
)

func TestAddSameSelectionIncrementsQuantity(t *testing.T) {
	c := New()
	c.Add(hoodie, "M")
	c.Add(hoodie, "M")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "M", lines[0].Size)
	assert.Equal(t, 240, c.Total())
}

func TestAddDistinctSizesCreatesSeparateLines(t *testing.T) {
	c := New()
	c.Add(hoodie, "M")
	c.Add(hoodie, "L")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "M", lines[0].Size)
	assert.Equal(t, "L", lines[1].Size)
	assert.Equal(t, 240, c.Total())
}

func TestAdjustQuantityFloorsAtOne(t *testing.T) {
	c := New()
	c.Add(hoodie, "M")
	c.Add(hoodie, "M")
	key := Key{ProductID: "1", Size: "M"}

	c.AdjustQuantity(key, -1)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	// Decrement at quantity 1 is a no-op, not a removal.
	c.AdjustQuantity(key, -1)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	c.AdjustQuantity(key, -5)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestAdjustQuantityUnknownKeyIsNoop(t *testing.T) {
	c := New()
	c.Add(patch, "")
	c.AdjustQuantity(Key{ProductID: "99"}, 3)
	assert.Equal(t, 20, c.Total())
}

func TestTotalRecomputedAfterEveryMutation(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Total())

	c.Add(hoodie, "M")
	assert.Equal(t, 120, c.Total())

	c.Add(patch, "")
	assert.Equal(t, 140, c.Total())

	c.AdjustQuantity(Key{ProductID: "5"}, 2)
	assert.Equal(t, 180, c.Total())

	c.SetSize(Key{ProductID: "1", Size: "M"}, "L")
	assert.Equal(t, 180, c.Total())

	c.Remove(Key{ProductID: "5"})
	assert.Equal(t, 120, c.Total())
}

func TestSetSizeDoesNotMergeLines(t *testing.T) {
	c := New()
	c.Add(hoodie, "M")
	c.Add(hoodie, "L")

	// Reassigning M -> L leaves two lines for (1, L); size changes
	// never merge.
	c.SetSize(Key{ProductID: "1", Size: "M"}, "L")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "L", lines[0].Size)
	assert.Equal(t, "L", lines[1].Size)
	assert.Equal(t, 240, c.Total())
}

func TestRemoveDeletesLine(t *testing.T) {
	c := New()
	c.Add(hoodie, "M")
	c.Add(patch, "")

	c.Remove(Key{ProductID: "1", Size: "M"})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "5", lines[0].ProductID)
}

func TestClearEmptiesCart(t *testing.T) {
	c := New()
	c.Add(hoodie, "M")
	c.Add(patch, "")

	c.Clear()

	assert.True(t, c.Empty())
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.Total())
}

func TestSnapshotIsDetachedFromCart(t *testing.T) {
	c := New()
	c.Add(hoodie, "M")

	snap := c.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 120, snap.Total)

	c.Add(hoodie, "M")
	c.Clear()

	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 120, snap.Total)
	assert.False(t, snap.Empty())
}

func TestLinesPreserveInsertionOrder(t *testing.T) {
	c := New()
	c.Add(patch, "")
	c.Add(hoodie, "M")
	c.Add(hoodie, "L")

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "5", lines[0].ProductID)
	assert.Equal(t, "M", lines[1].Size)
	assert.Equal(t, "L", lines[2].Size)
}
