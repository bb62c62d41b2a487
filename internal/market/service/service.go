package service

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/agentfair/agorasim/internal/catalog"
	"github.com/agentfair/agorasim/internal/market/core"
	"github.com/agentfair/agorasim/internal/market/view"
)

var ErrUnknownSKU = errors.New("unknown sku")

// MarketService owns one simulated market per product and drives each on
// its own randomized cadence. Ticks are strictly sequential per market;
// snapshots are immutable values safe to hand to renderers.
type MarketService struct {
	cfg Config
	log *logrus.Entry

	mu      sync.RWMutex
	markets map[string]core.Market
	skus    []string // catalog order, for stable listing

	activity *view.ActivityView

	externalEvents chan view.MarketEvent
	droppedEvents  atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewMarketService seeds one market per product and starts its tick loop.
func NewMarketService(products []catalog.Product, roster []string, cfg Config, log *logrus.Entry) *MarketService {
	def := DefaultConfig()
	if cfg.MinTickInterval <= 0 {
		cfg.MinTickInterval = def.MinTickInterval
	}
	if cfg.MaxTickInterval < cfg.MinTickInterval {
		cfg.MaxTickInterval = cfg.MinTickInterval
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = def.EventBuffer
	}
	if cfg.TapeSize <= 0 {
		cfg.TapeSize = def.TapeSize
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	s := &MarketService{
		cfg:            cfg,
		log:            log.WithField("component", "market"),
		markets:        make(map[string]core.Market, len(products)),
		activity:       view.NewActivityView(cfg.TapeSize),
		externalEvents: make(chan view.MarketEvent, cfg.EventBuffer),
		closed:         make(chan struct{}),
	}

	mcfg := core.MarketConfig{Roster: roster}
	now := time.Now().UnixNano()
	for i, p := range products {
		rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
		s.markets[p.SKU] = core.NewMarket(mcfg, p.SKU, p.Title, core.Price(p.Offer.Price), now, rng)
		s.skus = append(s.skus, p.SKU)

		s.wg.Add(1)
		go s.runMarketLoop(p.SKU, rng)
	}

	s.log.WithField("markets", len(products)).Info("market service started")
	return s
}

// runMarketLoop drives one market. The timer is re-armed with a fresh
// uniform draw after every tick, so cadence stays in the configured range
// but never locks to a fixed period.
func (s *MarketService) runMarketLoop(sku string, rng *rand.Rand) {
	defer s.wg.Done()

	timer := time.NewTimer(s.nextInterval(rng))
	defer timer.Stop()

	for {
		select {
		case <-s.closed:
			return
		case <-timer.C:
			s.tickMarket(sku, rng)
			timer.Reset(s.nextInterval(rng))
		}
	}
}

func (s *MarketService) nextInterval(rng *rand.Rand) time.Duration {
	span := s.cfg.MaxTickInterval - s.cfg.MinTickInterval
	if span <= 0 {
		return s.cfg.MinTickInterval
	}
	return s.cfg.MinTickInterval + time.Duration(rng.Int63n(int64(span)))
}

func (s *MarketService) tickMarket(sku string, rng *rand.Rand) {
	now := time.Now().UnixNano()

	s.mu.Lock()
	next, events := s.markets[sku].Tick(now, rng)
	s.markets[sku] = next
	s.mu.Unlock()

	for _, ev := range events {
		s.emitEvent(view.MarketEvent{SKU: sku, Event: ev})
	}
}

func (s *MarketService) emitEvent(ev view.MarketEvent) {
	s.activity.Apply(ev)

	if s.cfg.DropEvents {
		select {
		case s.externalEvents <- ev:
		default:
			s.droppedEvents.Add(1)
		}
		return
	}
	select {
	case s.externalEvents <- ev:
	case <-s.closed:
	}
}

// GetMarket returns the current snapshot for one SKU.
func (s *MarketService) GetMarket(sku string) (core.Market, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.markets[sku]
	if !ok {
		return core.Market{}, ErrUnknownSKU
	}
	return m, nil
}

// Snapshot returns the current snapshot of every market. Returned values
// are immutable by construction (Tick is copy-on-write).
func (s *MarketService) Snapshot() map[string]core.Market {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]core.Market, len(s.markets))
	for sku, m := range s.markets {
		out[sku] = m
	}
	return out
}

// SKUs returns all market SKUs in catalog order.
func (s *MarketService) SKUs() []string {
	out := make([]string, len(s.skus))
	copy(out, s.skus)
	return out
}

// TradesLast returns the last n cross-SKU trades in chronological order.
func (s *MarketService) TradesLast(n int) []view.TaggedTrade {
	return s.activity.TradesLast(n)
}

// Events returns the consolidated market events channel.
func (s *MarketService) Events() <-chan view.MarketEvent {
	return s.externalEvents
}

// DroppedEvents returns the count of dropped market events.
func (s *MarketService) DroppedEvents() int64 {
	return s.droppedEvents.Load()
}

// Close stops all market loops. Cancellation only means no further ticks
// are scheduled; no tick is interrupted mid-flight.
func (s *MarketService) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
	s.wg.Wait()
	s.log.Info("market service stopped")
}
