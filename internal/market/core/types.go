package core

import "strconv"

// Side represents the order side: bid or ask.
type Side uint8

const (
	SideBid Side = iota
	SideAsk
)

func (s Side) String() string {
	switch s {
	case SideBid:
		return "BID"
	case SideAsk:
		return "ASK"
	default:
		return "UNKNOWN"
	}
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == SideBid {
		return SideAsk
	}
	return SideBid
}

// Price is an integer currency unit (cents).
type Price int64

func (p Price) String() string { return strconv.FormatInt(int64(p), 10) }

// Qty represents order quantity.
type Qty int64

func (q Qty) String() string { return strconv.FormatInt(int64(q), 10) }

// OrderEntry is a resting synthetic order. It is owned exclusively by the
// book side it rests on and is removed, not mutated elsewhere, when filled.
type OrderEntry struct {
	ID      string
	AgentID string
	Side    Side
	Price   Price
	Qty     Qty
	Time    int64 // unix nanos
}

// Trade is an executed match between the best bid and the best ask.
type Trade struct {
	ID          string
	BuyerAgent  string
	SellerAgent string
	Price       Price
	Qty         Qty
	Time        int64 // unix nanos
}

// MarketConfig carries the injected knobs of the simulator. The roster is
// the pool of synthetic counterparty names orders are attributed to.
type MarketConfig struct {
	Roster []string
}

// DefaultRoster is used when no roster is configured.
func DefaultRoster() []string {
	return []string{"Nova", "Atlas", "Quill", "Ember", "Orion", "Lyra"}
}
