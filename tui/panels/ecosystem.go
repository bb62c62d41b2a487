package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentfair/agorasim/internal/graph/core"
	"github.com/agentfair/agorasim/tui/styles"
)

const (
	agentGlyph  = "●"
	sellerGlyph = "■"
	edgeGlyph   = "·"
)

var edgeStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)

// EcosystemPanel renders the agent/seller layout on a character canvas.
// Node positions live in the logical canvas; the panel scales them down
// to whatever cell grid it has been given.
type EcosystemPanel struct {
	nodes   []core.Node
	edges   []core.Edge
	logW    float64
	logH    float64
	stats   string
	focused bool
	width   int
	height  int
}

// NewEcosystemPanel creates a new ecosystem panel.
func NewEcosystemPanel() *EcosystemPanel {
	return &EcosystemPanel{logW: 800, logH: 600}
}

// Init initializes the panel.
func (p *EcosystemPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *EcosystemPanel) Update(msg tea.Msg) (*EcosystemPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *EcosystemPanel) View() string {
	cols := p.width - 4
	rows := p.height - 5
	if cols < 10 || rows < 5 {
		return styles.PanelStyle.Width(p.width - 2).Height(p.height - 2).Render("")
	}

	// grid[r][c] holds a styled glyph or "" for empty
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
	}

	for _, e := range p.edges {
		src, okS := p.findNode(e.Source)
		dst, okD := p.findNode(e.Target)
		if !okS || !okD {
			continue
		}
		p.plotEdge(grid, cols, rows, src, dst)
	}

	for i := range p.nodes {
		n := &p.nodes[i]
		c, r := p.toCell(n.X, n.Y, cols, rows)
		glyph := agentGlyph
		if n.Kind == core.NodeSeller {
			glyph = sellerGlyph
		}
		grid[r][c] = lipgloss.NewStyle().Foreground(lipgloss.Color(n.Color)).Render(glyph)
	}

	var content strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] == "" {
				content.WriteString(" ")
			} else {
				content.WriteString(grid[r][c])
			}
		}
		content.WriteString("\n")
	}
	content.WriteString(styles.SizeStyle.Render(p.stats))

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Ecosystem", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// plotEdge samples points along the segment between two nodes.
func (p *EcosystemPanel) plotEdge(grid [][]string, cols, rows int, src, dst *core.Node) {
	const samples = 16
	dot := edgeStyle.Render(edgeGlyph)
	for i := 1; i < samples; i++ {
		t := float64(i) / samples
		x := src.X + (dst.X-src.X)*t
		y := src.Y + (dst.Y-src.Y)*t
		c, r := p.toCell(x, y, cols, rows)
		if grid[r][c] == "" {
			grid[r][c] = dot
		}
	}
}

func (p *EcosystemPanel) toCell(x, y float64, cols, rows int) (int, int) {
	c := int(x / p.logW * float64(cols))
	r := int(y / p.logH * float64(rows))
	if c < 0 {
		c = 0
	}
	if c >= cols {
		c = cols - 1
	}
	if r < 0 {
		r = 0
	}
	if r >= rows {
		r = rows - 1
	}
	return c, r
}

func (p *EcosystemPanel) findNode(id string) (*core.Node, bool) {
	for i := range p.nodes {
		if p.nodes[i].ID == id {
			return &p.nodes[i], true
		}
	}
	return nil, false
}

// SetFocus sets the focus state of the panel.
func (p *EcosystemPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *EcosystemPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetGraph replaces the displayed layout snapshot.
func (p *EcosystemPanel) SetGraph(nodes []core.Node, edges []core.Edge, logW, logH float64) {
	p.nodes = nodes
	p.edges = edges
	if logW > 0 && logH > 0 {
		p.logW, p.logH = logW, logH
	}

	agents, sellers := 0, 0
	for _, n := range nodes {
		if n.Kind == core.NodeAgent {
			agents++
		} else {
			sellers++
		}
	}
	p.stats = fmt.Sprintf("%s agents: %d  %s sellers: %d  edges: %d",
		agentGlyph, agents, sellerGlyph, sellers, len(edges))
}
