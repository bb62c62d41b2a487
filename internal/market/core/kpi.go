package core

// BestBid returns the highest resting bid.
func (m Market) BestBid() (OrderEntry, bool) { return m.Bids.Top() }

// BestAsk returns the lowest resting ask.
func (m Market) BestAsk() (OrderEntry, bool) { return m.Asks.Top() }

// Spread returns bestAsk - bestBid. ok is false when either side is empty.
func (m Market) Spread() (Price, bool) {
	bid, okBid := m.Bids.Top()
	ask, okAsk := m.Asks.Top()
	if !okBid || !okAsk {
		return 0, false
	}
	return ask.Price - bid.Price, true
}

// SpreadPct returns the spread as a percentage of the base price.
func (m Market) SpreadPct() (float64, bool) {
	spread, ok := m.Spread()
	if !ok || m.BasePrice == 0 {
		return 0, false
	}
	return float64(spread) / float64(m.BasePrice) * 100, true
}

// BuyPressure returns totalBidQty / (totalBidQty + totalAskQty).
// An entirely empty book reads as balanced 0.5.
func (m Market) BuyPressure() float64 {
	bid := m.Bids.Depth()
	ask := m.Asks.Depth()
	if bid+ask == 0 {
		return 0.5
	}
	return float64(bid) / float64(bid+ask)
}
