package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpread(t *testing.T) {
	m := marketWithBook(
		[]OrderEntry{entry("b1", SideBid, 990, 4)},
		[]OrderEntry{entry("a1", SideAsk, 1010, 6)},
	)

	spread, ok := m.Spread()
	require.True(t, ok)
	assert.Equal(t, Price(20), spread)

	pct, ok := m.SpreadPct()
	require.True(t, ok)
	assert.InDelta(t, 2.0, pct, 1e-9)
}

func TestSpreadEmptySide(t *testing.T) {
	m := marketWithBook([]OrderEntry{entry("b1", SideBid, 990, 4)}, nil)

	_, ok := m.Spread()
	assert.False(t, ok)
	_, ok = m.SpreadPct()
	assert.False(t, ok)
}

func TestBuyPressure(t *testing.T) {
	m := marketWithBook(
		[]OrderEntry{entry("b1", SideBid, 990, 6)},
		[]OrderEntry{entry("a1", SideAsk, 1010, 2)},
	)
	assert.InDelta(t, 0.75, m.BuyPressure(), 1e-9)
}

func TestBuyPressureEmptyBookDefaultsBalanced(t *testing.T) {
	m := marketWithBook(nil, nil)
	assert.InDelta(t, 0.5, m.BuyPressure(), 1e-9)
}
