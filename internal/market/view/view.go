package view

import (
	"sync"

	"github.com/agentfair/agorasim/internal/market/core"
)

// MarketEvent wraps a per-market core event with its SKU.
type MarketEvent struct {
	SKU   string
	Event core.Event
}

// ActivityView is a thread-safe read model over the consolidated event
// stream: a bounded cross-SKU trade tape for the activity panel.
type ActivityView struct {
	mu   sync.RWMutex
	tape *TradeTape
}

// NewActivityView creates an ActivityView with the given tape capacity.
func NewActivityView(tapeCapacity int) *ActivityView {
	return &ActivityView{tape: NewTradeTape(tapeCapacity)}
}

// Apply processes one market event.
func (v *ActivityView) Apply(ev MarketEvent) {
	te, ok := ev.Event.(core.TradeEvent)
	if !ok {
		return
	}
	v.mu.Lock()
	v.tape.Append(TaggedTrade{SKU: ev.SKU, Trade: te.Trade})
	v.mu.Unlock()
}

// TradesLast returns the last n trades in chronological order.
func (v *ActivityView) TradesLast(n int) []TaggedTrade {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.tape.Last(n)
}
