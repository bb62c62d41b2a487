package core

import (
	"math"
	"math/rand"

	"github.com/agentfair/agorasim/internal/catalog"
)

// Trust band colors shared with the rendering layer.
const (
	ColorGreen = "#10B981"
	ColorCyan  = "#06B6D4"
	ColorAmber = "#F59E0B"
	ColorRed   = "#EF4444"
)

const (
	defaultSellerTrust = 70

	// MaxA2AEdges caps the agent-to-agent ring regardless of query volume.
	MaxA2AEdges = 6
)

// TrustColor maps a 0..100 trust score onto a display color. Band lower
// bounds are inclusive.
func TrustColor(trust float64) string {
	switch {
	case trust >= 80:
		return ColorGreen
	case trust >= 60:
		return ColorCyan
	case trust >= 40:
		return ColorAmber
	default:
		return ColorRed
	}
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BuildGraph lays out one node per agent and per seller on concentric
// scatter circles around the canvas center and derives the edge set.
// Node scatter uses rng; edge topology is fully deterministic so repeated
// builds over the same inputs connect the same pairs.
func BuildGraph(agents []catalog.Agent, sellers []catalog.Seller, a2aQueries int, width, height float64, rng *rand.Rand) ([]Node, []Edge) {
	cx, cy := width/2, height/2
	nodes := make([]Node, 0, len(agents)+len(sellers))

	for i, a := range agents {
		angle := 2 * math.Pi * float64(i) / float64(len(agents))
		dist := 120 + rng.Float64()*80

		trust := 75 + rng.Float64()*25
		if a.TrustScore != nil {
			trust = *a.TrustScore
		}

		nodes = append(nodes, Node{
			ID:     a.AgentID,
			Label:  a.Name,
			Kind:   NodeAgent,
			X:      cx + math.Cos(angle)*dist,
			Y:      cy + math.Sin(angle)*dist,
			Radius: clamp(10, 24, 10+float64(a.TotalOrders)*2),
			Trust:  trust,
			Orders: a.TotalOrders,
			Color:  TrustColor(trust),
		})
	}

	for i, s := range sellers {
		angle := 2*math.Pi*float64(i)/float64(len(sellers)) + math.Pi/4
		dist := 180 + rng.Float64()*60

		trust := float64(defaultSellerTrust)
		if s.TrustScore != nil {
			trust = *s.TrustScore
		}

		nodes = append(nodes, Node{
			ID:     s.SellerID,
			Label:  s.BusinessName,
			Kind:   NodeSeller,
			X:      cx + math.Cos(angle)*dist,
			Y:      cy + math.Sin(angle)*dist,
			Radius: clamp(12, 22, 12+float64(s.TotalProducts)),
			Trust:  trust,
			Color:  TrustColor(trust),
		})
	}

	return nodes, buildEdges(agents, sellers, a2aQueries)
}

// buildEdges derives the edge set: each ordering agent is pinned to one
// seller by hashing the last byte of its id (a stable pseudo-assignment,
// not a real order mapping), and up to six a2a query edges chain
// consecutive agents in a ring.
func buildEdges(agents []catalog.Agent, sellers []catalog.Seller, a2aQueries int) []Edge {
	var edges []Edge

	if len(sellers) > 0 {
		for _, a := range agents {
			if a.TotalOrders <= 0 || a.AgentID == "" {
				continue
			}
			si := int(a.AgentID[len(a.AgentID)-1]) % len(sellers)
			edges = append(edges, Edge{
				Source: a.AgentID,
				Target: sellers[si].SellerID,
				Weight: 2,
				Kind:   EdgeOrder,
			})
		}
	}

	if len(agents) > 1 {
		n := a2aQueries
		if n > MaxA2AEdges {
			n = MaxA2AEdges
		}
		for i := 0; i < n; i++ {
			edges = append(edges, Edge{
				Source: agents[i%len(agents)].AgentID,
				Target: agents[(i+1)%len(agents)].AgentID,
				Weight: 1,
				Kind:   EdgeA2A,
			})
		}
	}

	return edges
}
