package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marketWithBook(bids, asks []OrderEntry) Market {
	m := Market{
		SKU:       "SKU-TST-001",
		BasePrice: 1000,
		Bids:      Book{side: SideBid},
		Asks:      Book{side: SideAsk},
		LastPrice: 1000,
		High24h:   1040,
		Low24h:    960,
		roster:    testRoster,
	}
	for _, e := range bids {
		m.Bids.insert(e)
	}
	for _, e := range asks {
		m.Asks.insert(e)
	}
	return m
}

func TestChooseActionThresholds(t *testing.T) {
	assert.Equal(t, actionMatch, chooseAction(0))
	assert.Equal(t, actionMatch, chooseAction(0.3499))
	assert.Equal(t, actionNewBid, chooseAction(MatchProb))
	assert.Equal(t, actionNewBid, chooseAction(0.6499))
	assert.Equal(t, actionNewAsk, chooseAction(NewBidProb))
	assert.Equal(t, actionNewAsk, chooseAction(0.9999))
}

func TestMatchFullFillRemovesBothOrders(t *testing.T) {
	m := marketWithBook(
		[]OrderEntry{entry("b1", SideBid, 1000, 5)},
		[]OrderEntry{entry("a1", SideAsk, 1000, 5)},
	)

	next, events := m.applyMatch(99)

	require.Len(t, next.Trades, 1)
	tr := next.Trades[0]
	assert.Equal(t, Price(1000), tr.Price)
	assert.Equal(t, Qty(5), tr.Qty)
	assert.Equal(t, 0, next.Bids.Len())
	assert.Equal(t, 0, next.Asks.Len())

	assert.Equal(t, Price(1000), next.LastPrice)
	assert.Equal(t, Qty(5), next.Volume24h)
	assert.Equal(t, int64(1), next.TradeCount24h)

	// trade + two removals
	require.Len(t, events, 3)
	_, ok := events[0].(TradeEvent)
	assert.True(t, ok)
}

func TestMatchPartialFillDecrementsBid(t *testing.T) {
	m := marketWithBook(
		[]OrderEntry{entry("b1", SideBid, 1000, 5)},
		[]OrderEntry{entry("a1", SideAsk, 1000, 3)},
	)

	next, _ := m.applyMatch(99)

	require.Len(t, next.Trades, 1)
	assert.Equal(t, Qty(3), next.Trades[0].Qty)
	assert.Equal(t, Price(1000), next.Trades[0].Price)

	top, ok := next.Bids.Top()
	require.True(t, ok)
	assert.Equal(t, "b1", top.ID)
	assert.Equal(t, Qty(2), top.Qty)
	assert.Equal(t, 0, next.Asks.Len())
}

func TestMatchUsesRoundedMidpoint(t *testing.T) {
	m := marketWithBook(
		[]OrderEntry{entry("b1", SideBid, 1001, 2)},
		[]OrderEntry{entry("a1", SideAsk, 1000, 2)},
	)

	next, _ := m.applyMatch(99)

	require.Len(t, next.Trades, 1)
	assert.Equal(t, Price(1001), next.Trades[0].Price) // round(2001/2) rounds half up
	assert.Equal(t, m.Bids.Entries()[0].AgentID, next.Trades[0].BuyerAgent)
	assert.Equal(t, m.Asks.Entries()[0].AgentID, next.Trades[0].SellerAgent)
}

func TestMatchEmptyBookIsNoOp(t *testing.T) {
	m := marketWithBook(nil, nil)

	next, events := m.applyMatch(99)

	assert.Empty(t, events)
	assert.Empty(t, next.Trades)
	assert.Equal(t, m.LastPrice, next.LastPrice)
}

func TestMatchNonCrossingBookIsNoOp(t *testing.T) {
	m := marketWithBook(
		[]OrderEntry{entry("b1", SideBid, 990, 5)},
		[]OrderEntry{entry("a1", SideAsk, 1010, 5)},
	)

	next, events := m.applyMatch(99)

	assert.Empty(t, events)
	assert.Empty(t, next.Trades)
	assert.Equal(t, 1, next.Bids.Len())
	assert.Equal(t, 1, next.Asks.Len())
}

func TestNewBidReferencesBestBid(t *testing.T) {
	m := marketWithBook(
		[]OrderEntry{entry("b1", SideBid, 2000, 5)},
		nil,
	)
	rng := rand.New(rand.NewSource(3))

	next, events := m.applyNewOrder(SideBid, 42, rng)

	require.Equal(t, 2, next.Bids.Len())
	require.Len(t, events, 1)
	placed := events[0].(OrderPlacedEvent).Entry
	assert.GreaterOrEqual(t, placed.Price, roundPrice(2000*bidDriftLow))
	assert.LessOrEqual(t, placed.Price, roundPrice(2000*bidDriftHigh))
	assert.GreaterOrEqual(t, placed.Qty, Qty(1))
	assert.LessOrEqual(t, placed.Qty, Qty(newOrderMaxQty))
	assert.Equal(t, int64(42), placed.Time)
}

func TestNewAskOnEmptySideReferencesBasePrice(t *testing.T) {
	m := marketWithBook(nil, nil)
	rng := rand.New(rand.NewSource(3))

	next, events := m.applyNewOrder(SideAsk, 42, rng)

	require.Equal(t, 1, next.Asks.Len())
	placed := events[0].(OrderPlacedEvent).Entry
	assert.GreaterOrEqual(t, placed.Price, roundPrice(float64(m.BasePrice)*askDriftLow))
	assert.LessOrEqual(t, placed.Price, roundPrice(float64(m.BasePrice)*askDriftHigh))
}

func TestNewOrderEvictsOverflow(t *testing.T) {
	var bids []OrderEntry
	for p := Price(100); p < Price(100+MaxBookDepth); p++ {
		bids = append(bids, entry("x", SideBid, p, 1))
	}
	m := marketWithBook(bids, nil)
	rng := rand.New(rand.NewSource(5))

	next, events := m.applyNewOrder(SideBid, 42, rng)

	assert.Equal(t, MaxBookDepth, next.Bids.Len())
	var evicted bool
	for _, ev := range events {
		if rm, ok := ev.(OrderRemovedEvent); ok {
			assert.Equal(t, RemoveReasonEvicted, rm.Reason)
			evicted = true
		}
	}
	assert.True(t, evicted)
}

func TestTickLeavesPreviousSnapshotUntouched(t *testing.T) {
	m := marketWithBook(
		[]OrderEntry{entry("b1", SideBid, 1000, 5)},
		[]OrderEntry{entry("a1", SideAsk, 1000, 5)},
	)
	beforeBids := m.Bids.Entries()
	beforeAsks := m.Asks.Entries()

	_, _ = m.applyMatch(99)

	assert.Equal(t, beforeBids, m.Bids.Entries())
	assert.Equal(t, beforeAsks, m.Asks.Entries())
	assert.Empty(t, m.Trades)
}

func TestTickSoakHoldsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := newTestMarket(11)

	high := m.High24h
	low := m.Low24h
	volume := m.Volume24h

	for i := 0; i < 5000; i++ {
		next, events := m.Tick(int64(i+1), rng)
		assertBookInvariants(t, next)

		require.GreaterOrEqual(t, next.High24h, high, "high24h must widen monotonically")
		require.LessOrEqual(t, next.Low24h, low, "low24h must widen monotonically")
		require.GreaterOrEqual(t, next.Volume24h, volume)

		for _, ev := range events {
			if te, ok := ev.(TradeEvent); ok {
				require.Equal(t, te.Trade.Price, next.LastPrice)
				require.Equal(t, te.Trade, next.Trades[0], "trades must be most-recent-first")
			}
		}

		high, low, volume = next.High24h, next.Low24h, next.Volume24h
		m = next
	}
}

func TestPrependTradeCapsHistory(t *testing.T) {
	var trades []Trade
	for i := 0; i < MaxTrades+10; i++ {
		trades = prependTrade(trades, Trade{ID: "t", Time: int64(i)})
	}
	require.Len(t, trades, MaxTrades)
	assert.Equal(t, int64(MaxTrades+9), trades[0].Time)
}
