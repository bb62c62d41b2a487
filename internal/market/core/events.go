package core

// Event is the interface for all market events.
type Event interface {
	isEvent()
}

// RemoveReason indicates why an order left the book.
type RemoveReason uint8

const (
	RemoveReasonFilled RemoveReason = iota
	RemoveReasonEvicted
)

func (r RemoveReason) String() string {
	switch r {
	case RemoveReasonFilled:
		return "FILLED"
	case RemoveReasonEvicted:
		return "EVICTED"
	default:
		return "UNKNOWN"
	}
}

// TradeEvent is emitted when the best bid crosses the best ask.
type TradeEvent struct {
	Trade Trade
}

func (TradeEvent) isEvent() {}

// OrderPlacedEvent is emitted when a new synthetic order rests on the book.
type OrderPlacedEvent struct {
	Entry OrderEntry
}

func (OrderPlacedEvent) isEvent() {}

// OrderReducedEvent is emitted when a resting order is partially filled.
type OrderReducedEvent struct {
	OrderID   string
	AgentID   string
	Side      Side
	Price     Price
	Delta     Qty // negative number (e.g. -5)
	Remaining Qty
	Time      int64
}

func (OrderReducedEvent) isEvent() {}

// OrderRemovedEvent is emitted when an order is fully removed from the book,
// either filled away or evicted off the tail on overflow.
type OrderRemovedEvent struct {
	Entry  OrderEntry
	Reason RemoveReason
	Time   int64
}

func (OrderRemovedEvent) isEvent() {}
