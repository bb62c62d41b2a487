package core

// NodeKind distinguishes agent and seller nodes.
type NodeKind uint8

const (
	NodeAgent NodeKind = iota
	NodeSeller
)

func (k NodeKind) String() string {
	switch k {
	case NodeAgent:
		return "AGENT"
	case NodeSeller:
		return "SELLER"
	default:
		return "UNKNOWN"
	}
}

// Node is one body in the force layout. Position and velocity are mutated
// in place by Step; everything else is fixed at build time.
type Node struct {
	ID    string
	Label string
	Kind  NodeKind

	X, Y   float64
	VX, VY float64

	Radius float64
	Trust  float64 // 0..100
	Orders int
	Color  string // hex, derived from Trust
}

// EdgeKind tags the relation an edge represents.
type EdgeKind uint8

const (
	EdgeOrder EdgeKind = iota
	EdgeA2A
	EdgeReview
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeOrder:
		return "ORDER"
	case EdgeA2A:
		return "A2A"
	case EdgeReview:
		return "REVIEW"
	default:
		return "UNKNOWN"
	}
}

// Edge is a directed relation between two node IDs. Edges are derived at
// build time and read-only during integration.
type Edge struct {
	Source string
	Target string
	Weight float64
	Kind   EdgeKind
}

// ForceConfig names the layout tuning constants so tests and alternative
// tunings can swap them without touching the integrator.
type ForceConfig struct {
	// CenterPull scales the gravity toward the canvas center.
	CenterPull float64
	// Repulsion scales the inverse-square pairwise push.
	Repulsion float64
	// SpringStrength scales the Hookean pull along edges.
	SpringStrength float64
	// IdealEdgeLength is the rest length of an edge spring.
	IdealEdgeLength float64
	// Damping is applied to the post-force velocity each step.
	Damping float64
	// TimeStep and TimeScale together scale velocity into displacement.
	TimeStep  float64
	TimeScale float64
}

// DefaultForceConfig returns the tuning the ecosystem view ships with.
func DefaultForceConfig() ForceConfig {
	return ForceConfig{
		CenterPull:      0.003,
		Repulsion:       800,
		SpringStrength:  0.01,
		IdealEdgeLength: 140,
		Damping:         0.85,
		TimeStep:        0.015,
		TimeScale:       60,
	}
}
