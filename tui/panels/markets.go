package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentfair/agorasim/internal/a2afeed"
	"github.com/agentfair/agorasim/internal/market/core"
	"github.com/agentfair/agorasim/tui/styles"
)

// MarketUpdateMsg is sent when a market emits an event.
type MarketUpdateMsg struct {
	SKU   string
	Event core.Event
}

// FeedUpdateMsg is sent when a new agent query lands on the feed.
type FeedUpdateMsg struct {
	Record a2afeed.QueryRecord
}

// MarketsPanel displays the per-listing market overview table.
type MarketsPanel struct {
	skus     []string
	markets  map[string]core.Market
	selected int
	focused  bool
	width    int
	height   int
}

// NewMarketsPanel creates a new market overview panel.
func NewMarketsPanel(skus []string) *MarketsPanel {
	return &MarketsPanel{
		skus:    skus,
		markets: make(map[string]core.Market),
	}
}

// Init initializes the panel.
func (p *MarketsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *MarketsPanel) Update(msg tea.Msg) (*MarketsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selected > 0 {
				p.selected--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selected < len(p.skus)-1 {
				p.selected++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *MarketsPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-12s %9s %7s %6s %8s", "SKU", "Last", "Sprd%", "Buy%", "Vol24h")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, sku := range p.skus {
		m, ok := p.markets[sku]
		if !ok {
			continue
		}

		spreadStr := "-"
		if pct, ok := m.SpreadPct(); ok {
			spreadStr = fmt.Sprintf("%.2f", pct)
		}
		pressure := m.BuyPressure() * 100

		row := fmt.Sprintf("%-12s %9s %7s %5.0f%% %8d",
			sku,
			styles.FormatPrice(int64(m.LastPrice)),
			spreadStr,
			pressure,
			m.Volume24h,
		)

		style := styles.RowStyle
		if i == p.selected {
			style = styles.SelectedRowStyle
		}
		content.WriteString(style.Render(row))
		content.WriteString("\n")
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Markets", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *MarketsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MarketsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetSnapshot replaces the displayed market snapshots.
func (p *MarketsPanel) SetSnapshot(snap map[string]core.Market) {
	p.markets = snap
}

// SelectedSKU returns the currently highlighted SKU.
func (p *MarketsPanel) SelectedSKU() string {
	if p.selected < 0 || p.selected >= len(p.skus) {
		return ""
	}
	return p.skus[p.selected]
}
