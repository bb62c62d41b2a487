package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agentfair/agorasim/internal/catalog"
	"github.com/agentfair/agorasim/internal/graph/core"
)

// GraphService owns the ecosystem layout: it rebuilds the node/edge set
// when seeds or canvas change and runs a single integrator loop over it.
// The loop and every rebuild share one lock, so two integrators never
// touch the same node set.
type GraphService struct {
	cfg Config
	log *logrus.Entry

	mu       sync.RWMutex
	agents   []catalog.Agent
	sellers  []catalog.Seller
	a2aCount int
	width    float64
	height   float64
	nodes    []core.Node
	edges    []core.Edge
	rng      *rand.Rand

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewGraphService builds the initial layout and starts the frame loop.
func NewGraphService(agents []catalog.Agent, sellers []catalog.Seller, a2aCount int, cfg Config, log *logrus.Entry) *GraphService {
	def := DefaultConfig()
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = def.FrameInterval
	}
	if cfg.Force == (core.ForceConfig{}) {
		cfg.Force = def.Force
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	s := &GraphService{
		cfg:      cfg,
		log:      log.WithField("component", "graph"),
		agents:   agents,
		sellers:  sellers,
		a2aCount: a2aCount,
		width:    cfg.Width,
		height:   cfg.Height,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		closed:   make(chan struct{}),
	}
	s.rebuildLocked()

	s.wg.Add(1)
	go s.runFrameLoop()

	s.log.WithFields(logrus.Fields{"nodes": len(s.nodes), "edges": len(s.edges)}).Info("graph service started")
	return s
}

func (s *GraphService) runFrameLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.closed:
			return
		case <-ticker.C:
			s.mu.Lock()
			core.Step(s.nodes, s.edges, s.cfg.Force, s.width, s.height)
			s.mu.Unlock()
		}
	}
}

// rebuildLocked resets the layout from the current seeds. Positions restart
// on the scatter circles; there is no position-preserving reflow.
func (s *GraphService) rebuildLocked() {
	s.nodes, s.edges = core.BuildGraph(s.agents, s.sellers, s.a2aCount, s.width, s.height, s.rng)
}

// Resize changes the logical canvas and rebuilds the layout.
func (s *GraphService) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.rebuildLocked()
}

// SetQueryCount updates the number of a2a query records. The layout only
// rebuilds when the effective edge budget changes; once the ring is
// saturated, further query growth must not discard integration progress.
func (s *GraphService) SetQueryCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clampA2A(n) == clampA2A(s.a2aCount) {
		s.a2aCount = n
		return
	}
	s.a2aCount = n
	s.rebuildLocked()
}

func clampA2A(n int) int {
	if n > core.MaxA2AEdges {
		return core.MaxA2AEdges
	}
	return n
}

// Size returns the current logical canvas dimensions.
func (s *GraphService) Size() (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}

// Snapshot returns copies of the current nodes and edges for rendering.
func (s *GraphService) Snapshot() ([]core.Node, []core.Edge) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nodes := make([]core.Node, len(s.nodes))
	copy(nodes, s.nodes)
	edges := make([]core.Edge, len(s.edges))
	copy(edges, s.edges)
	return nodes, edges
}

// Close stops the frame loop.
func (s *GraphService) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
	s.wg.Wait()
	s.log.Info("graph service stopped")
}
