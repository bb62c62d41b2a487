package core

import "math"

// Step advances the layout by one frame: center gravity, pairwise
// inverse-square repulsion, and edge springs accumulate into a force per
// node, damping is applied to the post-force velocity, and positions are
// clamped so every node stays fully on the canvas.
//
// Nodes are updated in place, sequentially; later nodes see earlier nodes'
// new positions within the same step. Edges are never mutated. There is no
// convergence test; the host stops the loop.
func Step(nodes []Node, edges []Edge, cfg ForceConfig, width, height float64) {
	cx, cy := width/2, height/2

	index := make(map[string]int, len(nodes))
	for i := range nodes {
		index[nodes[i].ID] = i
	}

	for i := range nodes {
		n := &nodes[i]

		fx := (cx - n.X) * cfg.CenterPull
		fy := (cy - n.Y) * cfg.CenterPull

		for j := range nodes {
			if j == i {
				continue
			}
			dx := n.X - nodes[j].X
			dy := n.Y - nodes[j].Y
			d := math.Hypot(dx, dy)
			if d < 1 {
				d = 1
			}
			f := cfg.Repulsion / (d * d)
			fx += dx / d * f
			fy += dy / d * f
		}

		for _, e := range edges {
			var otherID string
			switch n.ID {
			case e.Source:
				otherID = e.Target
			case e.Target:
				otherID = e.Source
			default:
				continue
			}
			j, ok := index[otherID]
			if !ok {
				continue
			}
			dx := nodes[j].X - n.X
			dy := nodes[j].Y - n.Y
			d := math.Hypot(dx, dy)
			if d < 1 {
				d = 1
			}
			f := (d - cfg.IdealEdgeLength) * cfg.SpringStrength
			fx += dx / d * f
			fy += dy / d * f
		}

		// Drag applies to the post-force velocity.
		n.VX = (n.VX + fx) * cfg.Damping
		n.VY = (n.VY + fy) * cfg.Damping

		n.X = clampPos(n.X+n.VX*cfg.TimeStep*cfg.TimeScale, n.Radius, width-n.Radius)
		n.Y = clampPos(n.Y+n.VY*cfg.TimeStep*cfg.TimeScale, n.Radius, height-n.Radius)
	}
}

func clampPos(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
