package core

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxBookDepth caps each book side; the tail entry is evicted on overflow.
	MaxBookDepth = 12
	// MaxTrades caps the retained trade history, most recent first.
	MaxTrades = 50

	seedLevelsPerSide  = 8
	seedSpreadFraction = 0.02
	seedBackdateWindow = int64(10 * time.Minute)
)

// Market is the per-SKU simulated order book state. It is treated as an
// immutable snapshot: Tick returns a new Market and never mutates state
// reachable from the old one.
type Market struct {
	SKU       string
	Title     string
	BasePrice Price

	Bids Book
	Asks Book

	Trades []Trade // most-recent-first, len <= MaxTrades

	LastPrice     Price
	High24h       Price
	Low24h        Price
	Volume24h     Qty
	TradeCount24h int64

	// roster is the injected counterparty pool; read-only after creation.
	roster []string
}

func roundPrice(v float64) Price { return Price(math.Round(v)) }

// NewMarket seeds a market around basePrice with eight synthetic orders per
// side. Price dispersion grows with distance from the touch; timestamps are
// backdated within the last ten minutes. The seeded 24h volume and trade
// count are random display history, not derived from the book.
func NewMarket(cfg MarketConfig, sku, title string, basePrice Price, now int64, rng *rand.Rand) Market {
	roster := cfg.Roster
	if len(roster) == 0 {
		roster = DefaultRoster()
	}

	m := Market{
		SKU:           sku,
		Title:         title,
		BasePrice:     basePrice,
		Bids:          NewBook(SideBid),
		Asks:          NewBook(SideAsk),
		LastPrice:     basePrice,
		High24h:       roundPrice(float64(basePrice) * 1.04),
		Low24h:        roundPrice(float64(basePrice) * 0.96),
		Volume24h:     Qty(400 + rng.Int63n(601)),
		TradeCount24h: 50 + rng.Int63n(201),
		roster:        roster,
	}

	spread := float64(basePrice) * seedSpreadFraction
	for i := 0; i < seedLevelsPerSide; i++ {
		offset := spread * (0.5 + float64(i)*0.3)

		m.Bids.insert(OrderEntry{
			ID:      uuid.NewString(),
			AgentID: roster[rng.Intn(len(roster))],
			Side:    SideBid,
			Price:   roundPrice(float64(basePrice) - offset + rng.Float64()*100 - 50),
			Qty:     Qty(1 + rng.Int63n(15)),
			Time:    now - rng.Int63n(seedBackdateWindow),
		})
		m.Asks.insert(OrderEntry{
			ID:      uuid.NewString(),
			AgentID: roster[rng.Intn(len(roster))],
			Side:    SideAsk,
			Price:   roundPrice(float64(basePrice) + offset + rng.Float64()*100 - 50),
			Qty:     Qty(1 + rng.Int63n(15)),
			Time:    now - rng.Int63n(seedBackdateWindow),
		})
	}

	return m
}
