package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, side Side, price Price, qty Qty) OrderEntry {
	return OrderEntry{ID: id, AgentID: "Nova", Side: side, Price: price, Qty: qty, Time: 1}
}

func TestBidInsertKeepsDescendingOrder(t *testing.T) {
	b := NewBook(SideBid)
	for _, p := range []Price{980, 1010, 995, 1010, 950, 1002} {
		b.insert(entry("x", SideBid, p, 1))
	}

	entries := b.Entries()
	require.Len(t, entries, 6)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Price, entries[i].Price)
	}
}

func TestAskInsertKeepsAscendingOrder(t *testing.T) {
	b := NewBook(SideAsk)
	for _, p := range []Price{1020, 990, 1005, 990, 1100} {
		b.insert(entry("x", SideAsk, p, 1))
	}

	entries := b.Entries()
	require.Len(t, entries, 5)
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Price, entries[i].Price)
	}
}

func TestEqualPricesKeepArrivalOrder(t *testing.T) {
	b := NewBook(SideBid)
	b.insert(entry("first", SideBid, 1000, 1))
	b.insert(entry("second", SideBid, 1000, 1))

	entries := b.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].ID)
	assert.Equal(t, "second", entries[1].ID)
}

func TestEvictOverflowDropsTail(t *testing.T) {
	b := NewBook(SideBid)
	for p := Price(1); p <= 13; p++ {
		b.insert(entry("x", SideBid, p, 1))
	}

	evicted, ok := b.evictOverflow(MaxBookDepth)
	require.True(t, ok)
	assert.Equal(t, Price(1), evicted.Price) // lowest bid is the tail
	assert.Equal(t, MaxBookDepth, b.Len())

	_, ok = b.evictOverflow(MaxBookDepth)
	assert.False(t, ok)
}

func TestRemoveAndReduceTop(t *testing.T) {
	b := NewBook(SideAsk)
	b.insert(entry("a", SideAsk, 100, 5))
	b.insert(entry("b", SideAsk, 101, 3))

	b.reduceTop(2)
	top, ok := b.Top()
	require.True(t, ok)
	assert.Equal(t, Qty(3), top.Qty)

	removed := b.removeTop()
	assert.Equal(t, "a", removed.ID)
	top, ok = b.Top()
	require.True(t, ok)
	assert.Equal(t, "b", top.ID)
}

func TestDepth(t *testing.T) {
	b := NewBook(SideBid)
	assert.Equal(t, Qty(0), b.Depth())
	b.insert(entry("a", SideBid, 100, 5))
	b.insert(entry("b", SideBid, 99, 7))
	assert.Equal(t, Qty(12), b.Depth())
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBook(SideBid)
	b.insert(entry("a", SideBid, 100, 5))

	c := b.clone()
	c.reduceTop(3)

	orig, _ := b.Top()
	assert.Equal(t, Qty(5), orig.Qty)
}
