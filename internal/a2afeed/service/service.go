package service

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agentfair/agorasim/internal/a2afeed"
	"github.com/agentfair/agorasim/internal/a2afeed/view"
)

var intents = []string{
	"price check",
	"stock availability",
	"bulk discount inquiry",
	"shipping quote",
	"spec comparison",
	"return policy check",
}

// FeedService generates a stream of synthetic agent-to-agent query records
// on a timer and keeps them in a bounded view.
type FeedService struct {
	cfg  Config
	log  *logrus.Entry
	view *view.FeedView

	agents []string
	skus   []string

	idGen atomic.Int64

	externalEvents chan view.QueryEvent
	droppedEvents  atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewFeedService starts the generator. agents are display names; skus are
// the listings queries refer to.
func NewFeedService(agents, skus []string, cfg Config, log *logrus.Entry) *FeedService {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.TapeSize <= 0 {
		cfg.TapeSize = def.TapeSize
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = def.EventBuffer
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	s := &FeedService{
		cfg:            cfg,
		log:            log.WithField("component", "a2afeed"),
		view:           view.NewFeedView(cfg.TapeSize),
		agents:         agents,
		skus:           skus,
		externalEvents: make(chan view.QueryEvent, cfg.EventBuffer),
		closed:         make(chan struct{}),
	}

	s.wg.Add(1)
	go s.runGenerator(rand.New(rand.NewSource(cfg.Seed)))

	return s
}

func (s *FeedService) runGenerator(rng *rand.Rand) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.closed:
			return
		case <-ticker.C:
			s.publish(s.generate(rng))
		}
	}
}

// generate picks two distinct agents when possible.
func (s *FeedService) generate(rng *rand.Rand) a2afeed.QueryRecord {
	rec := a2afeed.QueryRecord{
		ID:     a2afeed.QueryID(s.idGen.Add(1)),
		Time:   time.Now().UnixNano(),
		Intent: intents[rng.Intn(len(intents))],
	}
	if len(s.skus) > 0 {
		rec.SKU = s.skus[rng.Intn(len(s.skus))]
	}
	if n := len(s.agents); n > 0 {
		from := rng.Intn(n)
		to := from
		if n > 1 {
			to = (from + 1 + rng.Intn(n-1)) % n
		}
		rec.FromAgent = s.agents[from]
		rec.ToAgent = s.agents[to]
	}
	return rec
}

func (s *FeedService) publish(rec a2afeed.QueryRecord) {
	ev := view.QueryEvent{Record: rec}
	s.view.Apply(ev)

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

// Latest returns the last n query records in chronological order.
func (s *FeedService) Latest(n int) []a2afeed.QueryRecord {
	return s.view.Latest(n)
}

// Total returns the number of records ever published.
func (s *FeedService) Total() int64 {
	return s.view.Total()
}

// Events returns the external events channel for subscribers.
func (s *FeedService) Events() <-chan view.QueryEvent {
	return s.externalEvents
}

// DroppedEvents returns the count of dropped events.
func (s *FeedService) DroppedEvents() int64 {
	return s.droppedEvents.Load()
}

// Close stops the generator.
func (s *FeedService) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
	s.wg.Wait()
}
