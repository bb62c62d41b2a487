package panels

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentfair/agorasim/internal/a2afeed"
	"github.com/agentfair/agorasim/tui/styles"
)

// FeedPanel displays the rolling agent-to-agent query feed.
type FeedPanel struct {
	records []a2afeed.QueryRecord
	focused bool
	width   int
	height  int
}

// NewFeedPanel creates a new feed panel.
func NewFeedPanel() *FeedPanel {
	return &FeedPanel{}
}

// Init initializes the panel.
func (p *FeedPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *FeedPanel) Update(msg tea.Msg) (*FeedPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *FeedPanel) View() string {
	var content strings.Builder

	maxRows := p.height - 4
	if maxRows < 1 {
		maxRows = 1
	}

	// Newest first.
	records := p.records
	for i := len(records) - 1; i >= 0 && len(records)-1-i < maxRows; i-- {
		rec := records[i]
		ts := time.Unix(0, rec.Time).Format("15:04:05")

		line := fmt.Sprintf("%s  %s → %s  %s  %s",
			styles.TimeStyle.Render(ts),
			rec.FromAgent,
			rec.ToAgent,
			styles.FeedIntentStyle.Render(rec.Intent),
			styles.SizeStyle.Render(rec.SKU),
		)
		content.WriteString(styles.FeedStyle.Render(line))
		content.WriteString("\n")
	}

	if len(records) == 0 {
		content.WriteString(styles.SizeStyle.Render("Waiting for agent queries..."))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("A2A Queries", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *FeedPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *FeedPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetRecords replaces the displayed records (chronological order).
func (p *FeedPanel) SetRecords(records []a2afeed.QueryRecord) {
	p.records = records
}

// AddRecord appends one record, keeping the tail bounded.
func (p *FeedPanel) AddRecord(rec a2afeed.QueryRecord) {
	p.records = append(p.records, rec)
	if len(p.records) > 100 {
		p.records = p.records[len(p.records)-100:]
	}
}
