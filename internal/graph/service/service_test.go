package service

import (
	"testing"
	"time"

	"github.com/agentfair/agorasim/internal/catalog"
	"github.com/agentfair/agorasim/internal/graph/core"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.FrameInterval = 2 * time.Millisecond
	cfg.Seed = 7
	return cfg
}

func seeds() ([]catalog.Agent, []catalog.Seller) {
	c := catalog.Default()
	return c.Agents, c.Sellers
}

func TestGraphServiceLayoutStaysBounded(t *testing.T) {
	agents, sellers := seeds()
	svc := NewGraphService(agents, sellers, 4, fastConfig(), nil)
	defer svc.Close()

	time.Sleep(100 * time.Millisecond)

	nodes, edges := svc.Snapshot()
	if len(nodes) != len(agents)+len(sellers) {
		t.Fatalf("expected %d nodes, got %d", len(agents)+len(sellers), len(nodes))
	}
	if len(edges) == 0 {
		t.Fatal("expected edges")
	}

	w, h := svc.Size()
	for _, n := range nodes {
		if n.X < n.Radius || n.X > w-n.Radius || n.Y < n.Radius || n.Y > h-n.Radius {
			t.Errorf("node %s out of bounds: (%f, %f)", n.ID, n.X, n.Y)
		}
	}
}

func TestGraphServiceResizeRebuilds(t *testing.T) {
	agents, sellers := seeds()
	svc := NewGraphService(agents, sellers, 2, fastConfig(), nil)
	defer svc.Close()

	svc.Resize(1200, 900)

	w, h := svc.Size()
	if w != 1200 || h != 900 {
		t.Errorf("expected 1200x900, got %fx%f", w, h)
	}

	nodes, _ := svc.Snapshot()
	for _, n := range nodes {
		if n.X > 1200 || n.Y > 900 {
			t.Errorf("node %s outside resized canvas", n.ID)
		}
	}
}

func TestGraphServiceSetQueryCountChangesEdges(t *testing.T) {
	agents, sellers := seeds()
	svc := NewGraphService(agents, sellers, 0, fastConfig(), nil)
	defer svc.Close()

	_, before := svc.Snapshot()
	svc.SetQueryCount(3)
	_, after := svc.Snapshot()

	countA2A := func(edges []core.Edge) int {
		n := 0
		for _, e := range edges {
			if e.Kind == core.EdgeA2A {
				n++
			}
		}
		return n
	}
	if countA2A(before) != 0 {
		t.Errorf("expected no a2a edges before, got %d", countA2A(before))
	}
	if countA2A(after) != 3 {
		t.Errorf("expected 3 a2a edges after, got %d", countA2A(after))
	}
}

func TestGraphServiceSaturatedQueryCountKeepsPositions(t *testing.T) {
	agents, sellers := seeds()
	cfg := fastConfig()
	// Park the frame loop so only SetQueryCount could move nodes.
	cfg.FrameInterval = time.Hour
	svc := NewGraphService(agents, sellers, core.MaxA2AEdges+1, cfg, nil)
	defer svc.Close()

	before, edgesBefore := svc.Snapshot()
	svc.SetQueryCount(core.MaxA2AEdges + 2)
	after, edgesAfter := svc.Snapshot()

	if len(edgesBefore) != len(edgesAfter) {
		t.Fatalf("edge count changed on saturated budget: %d -> %d", len(edgesBefore), len(edgesAfter))
	}
	for i := range before {
		if before[i].X != after[i].X || before[i].Y != after[i].Y {
			t.Errorf("node %s position reset on saturated budget change: (%.1f,%.1f) -> (%.1f,%.1f)",
				before[i].ID, before[i].X, before[i].Y, after[i].X, after[i].Y)
		}
	}
}

func TestGraphServiceSnapshotIsCopy(t *testing.T) {
	agents, sellers := seeds()
	svc := NewGraphService(agents, sellers, 0, fastConfig(), nil)
	defer svc.Close()

	nodes, _ := svc.Snapshot()
	if len(nodes) == 0 {
		t.Fatal("expected nodes")
	}
	nodes[0].X = -9999

	fresh, _ := svc.Snapshot()
	if fresh[0].X == -9999 {
		t.Error("snapshot shares backing storage with service state")
	}
}
