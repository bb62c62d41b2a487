package core

import (
	"math/rand"

	"github.com/google/uuid"
)

// Cumulative branch thresholds for the per-tick event selector. One uniform
// draw r picks the action: r < MatchProb attempts a match, r < NewBidProb
// places a bid, anything else places an ask.
const (
	MatchProb  = 0.35
	NewBidProb = 0.65
)

// Price drift bounds for freshly placed orders, relative to the current top
// of book (or base price on an empty side).
const (
	bidDriftLow  = 0.97
	bidDriftHigh = 1.01
	askDriftLow  = 0.99
	askDriftHigh = 1.03

	newOrderMaxQty = 10
)

type tickAction uint8

const (
	actionMatch tickAction = iota
	actionNewBid
	actionNewAsk
)

// chooseAction maps one uniform draw onto a tick action.
func chooseAction(r float64) tickAction {
	switch {
	case r < MatchProb:
		return actionMatch
	case r < NewBidProb:
		return actionNewBid
	default:
		return actionNewAsk
	}
}

// Tick advances the market by one simulation step and returns the new
// snapshot plus the events it produced. Exactly one action runs per tick;
// the receiver is left untouched.
func (m Market) Tick(now int64, rng *rand.Rand) (Market, []Event) {
	switch chooseAction(rng.Float64()) {
	case actionMatch:
		return m.applyMatch(now)
	case actionNewBid:
		return m.applyNewOrder(SideBid, now, rng)
	default:
		return m.applyNewOrder(SideAsk, now, rng)
	}
}

// applyMatch crosses the top of book if the best bid meets the best ask.
// Only the top entry on each side is touched; there is no multi-level
// matching within one tick. A non-crossing or one-sided book is a no-op.
func (m Market) applyMatch(now int64) (Market, []Event) {
	bestBid, okBid := m.Bids.Top()
	bestAsk, okAsk := m.Asks.Top()
	if !okBid || !okAsk || bestBid.Price < bestAsk.Price {
		return m, nil
	}

	qty := bestBid.Qty
	if bestAsk.Qty < qty {
		qty = bestAsk.Qty
	}
	price := roundPrice(float64(bestBid.Price+bestAsk.Price) / 2)

	trade := Trade{
		ID:          uuid.NewString(),
		BuyerAgent:  bestBid.AgentID,
		SellerAgent: bestAsk.AgentID,
		Price:       price,
		Qty:         qty,
		Time:        now,
	}

	next := m
	next.Trades = prependTrade(m.Trades, trade)
	next.LastPrice = price
	if price > next.High24h {
		next.High24h = price
	}
	if price < next.Low24h {
		next.Low24h = price
	}
	next.Volume24h += qty
	next.TradeCount24h++

	events := []Event{TradeEvent{Trade: trade}}

	next.Bids, events = consumeTop(m.Bids, qty, now, events)
	next.Asks, events = consumeTop(m.Asks, qty, now, events)

	return next, events
}

// consumeTop reduces the best entry by qty, removing it entirely once its
// remaining quantity is used up.
func consumeTop(b Book, qty Qty, now int64, events []Event) (Book, []Event) {
	next := b.clone()
	top := next.entries[0]
	if top.Qty <= qty {
		next.removeTop()
		events = append(events, OrderRemovedEvent{
			Entry:  top,
			Reason: RemoveReasonFilled,
			Time:   now,
		})
		return next, events
	}
	next.reduceTop(qty)
	events = append(events, OrderReducedEvent{
		OrderID:   top.ID,
		AgentID:   top.AgentID,
		Side:      top.Side,
		Price:     top.Price,
		Delta:     -qty,
		Remaining: top.Qty - qty,
		Time:      now,
	})
	return next, events
}

// applyNewOrder places one synthetic order near the current top of book.
func (m Market) applyNewOrder(side Side, now int64, rng *rand.Rand) (Market, []Event) {
	book := m.Bids
	driftLow, driftHigh := bidDriftLow, bidDriftHigh
	if side == SideAsk {
		book = m.Asks
		driftLow, driftHigh = askDriftLow, askDriftHigh
	}

	ref := m.BasePrice
	if top, ok := book.Top(); ok {
		ref = top.Price
	}
	drift := driftLow + rng.Float64()*(driftHigh-driftLow)

	entry := OrderEntry{
		ID:      uuid.NewString(),
		AgentID: m.roster[rng.Intn(len(m.roster))],
		Side:    side,
		Price:   roundPrice(float64(ref) * drift),
		Qty:     Qty(1 + rng.Int63n(newOrderMaxQty)),
		Time:    now,
	}

	next := book.clone()
	next.insert(entry)
	events := []Event{OrderPlacedEvent{Entry: entry}}
	if evicted, ok := next.evictOverflow(MaxBookDepth); ok {
		events = append(events, OrderRemovedEvent{
			Entry:  evicted,
			Reason: RemoveReasonEvicted,
			Time:   now,
		})
	}

	out := m
	if side == SideBid {
		out.Bids = next
	} else {
		out.Asks = next
	}
	return out, events
}

func prependTrade(trades []Trade, t Trade) []Trade {
	out := make([]Trade, 0, len(trades)+1)
	out = append(out, t)
	out = append(out, trades...)
	if len(out) > MaxTrades {
		out = out[:MaxTrades]
	}
	return out
}
