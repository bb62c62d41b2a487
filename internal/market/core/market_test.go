package core

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRoster = []string{"Nova", "Atlas", "Quill"}

func newTestMarket(seed int64) Market {
	rng := rand.New(rand.NewSource(seed))
	return NewMarket(MarketConfig{Roster: testRoster}, "SKU-TST-001", "Test Product", 10000, time.Now().UnixNano(), rng)
}

func TestNewMarketSeedsBook(t *testing.T) {
	now := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(7))
	m := NewMarket(MarketConfig{Roster: testRoster}, "SKU-TST-001", "Test Product", 10000, now, rng)

	require.Equal(t, seedLevelsPerSide, m.Bids.Len())
	require.Equal(t, seedLevelsPerSide, m.Asks.Len())

	assert.Equal(t, Price(10000), m.LastPrice)
	assert.Equal(t, Price(10400), m.High24h)
	assert.Equal(t, Price(9600), m.Low24h)
	assert.Empty(t, m.Trades)

	assert.GreaterOrEqual(t, m.Volume24h, Qty(400))
	assert.LessOrEqual(t, m.Volume24h, Qty(1000))
	assert.GreaterOrEqual(t, m.TradeCount24h, int64(50))
	assert.LessOrEqual(t, m.TradeCount24h, int64(250))

	roster := map[string]bool{}
	for _, name := range testRoster {
		roster[name] = true
	}

	check := func(entries []OrderEntry, side Side) {
		for _, e := range entries {
			assert.Equal(t, side, e.Side)
			assert.NotEmpty(t, e.ID)
			assert.True(t, roster[e.AgentID], "agent %q not in roster", e.AgentID)
			assert.GreaterOrEqual(t, e.Qty, Qty(1))
			assert.LessOrEqual(t, e.Qty, Qty(15))
			assert.LessOrEqual(t, e.Time, now)
			assert.GreaterOrEqual(t, e.Time, now-seedBackdateWindow)
		}
	}
	check(m.Bids.Entries(), SideBid)
	check(m.Asks.Entries(), SideAsk)

	assertBookInvariants(t, m)
}

func TestNewMarketFallsBackToDefaultRoster(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewMarket(MarketConfig{}, "SKU-TST-002", "Test", 5000, 1, rng)

	defaults := map[string]bool{}
	for _, name := range DefaultRoster() {
		defaults[name] = true
	}
	for _, e := range m.Bids.Entries() {
		assert.True(t, defaults[e.AgentID])
	}
}

func assertBookInvariants(t *testing.T, m Market) {
	t.Helper()

	bids := m.Bids.Entries()
	for i := 1; i < len(bids); i++ {
		require.GreaterOrEqual(t, bids[i-1].Price, bids[i].Price, "bids out of order")
	}
	asks := m.Asks.Entries()
	for i := 1; i < len(asks); i++ {
		require.LessOrEqual(t, asks[i-1].Price, asks[i].Price, "asks out of order")
	}
	require.LessOrEqual(t, m.Bids.Len(), MaxBookDepth)
	require.LessOrEqual(t, m.Asks.Len(), MaxBookDepth)
	require.LessOrEqual(t, len(m.Trades), MaxTrades)
}
