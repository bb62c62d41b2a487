package view

import "github.com/agentfair/agorasim/internal/market/core"

// TaggedTrade is a trade annotated with the SKU it executed on.
type TaggedTrade struct {
	SKU   string
	Trade core.Trade
}

// TradeTape is a ring buffer of cross-SKU trades (bounded memory).
type TradeTape struct {
	buf   []TaggedTrade
	size  int
	start int
	count int
}

// NewTradeTape creates a tape with the given capacity.
func NewTradeTape(capacity int) *TradeTape {
	if capacity <= 0 {
		capacity = 1
	}
	return &TradeTape{
		buf:  make([]TaggedTrade, capacity),
		size: capacity,
	}
}

// Append adds a trade to the tape, overwriting the oldest when full.
func (t *TradeTape) Append(tr TaggedTrade) {
	if t.count < t.size {
		t.buf[(t.start+t.count)%t.size] = tr
		t.count++
		return
	}
	t.buf[t.start] = tr
	t.start = (t.start + 1) % t.size
}

// Last returns the last n trades in chronological order.
func (t *TradeTape) Last(n int) []TaggedTrade {
	if n <= 0 || t.count == 0 {
		return nil
	}
	if n > t.count {
		n = t.count
	}
	out := make([]TaggedTrade, n)
	first := (t.start + (t.count - n)) % t.size
	for i := 0; i < n; i++ {
		out[i] = t.buf[(first+i)%t.size]
	}
	return out
}

// Count returns the number of trades in the tape.
func (t *TradeTape) Count() int {
	return t.count
}
