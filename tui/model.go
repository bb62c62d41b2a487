package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	feedservice "github.com/agentfair/agorasim/internal/a2afeed/service"
	graphservice "github.com/agentfair/agorasim/internal/graph/service"
	marketservice "github.com/agentfair/agorasim/internal/market/service"
	"github.com/agentfair/agorasim/tui/panels"
	"github.com/agentfair/agorasim/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusMarkets   PanelFocus = 0
	FocusBook      PanelFocus = 1
	FocusEcosystem PanelFocus = 2
	FocusFeed      PanelFocus = 3
)

// Model is the main TUI application model.
type Model struct {
	// Services
	marketService *marketservice.MarketService
	feedService   *feedservice.FeedService
	graphService  *graphservice.GraphService

	// Panels
	marketsPanel   *panels.MarketsPanel
	bookPanel      *panels.BookPanel
	ecosystemPanel *panels.EcosystemPanel
	feedPanel      *panels.FeedPanel

	// Focus management
	focusedPanel PanelFocus

	// Window dimensions
	width  int
	height int

	ready bool
}

// NewModel creates a new TUI model.
func NewModel(marketService *marketservice.MarketService, feedService *feedservice.FeedService, graphService *graphservice.GraphService) *Model {
	skus := marketService.SKUs()

	marketsPanel := panels.NewMarketsPanel(skus)
	bookPanel := panels.NewBookPanel()
	ecosystemPanel := panels.NewEcosystemPanel()
	feedPanel := panels.NewFeedPanel()

	if len(skus) > 0 {
		if m, err := marketService.GetMarket(skus[0]); err == nil {
			bookPanel.SetMarket(m)
		}
	}

	return &Model{
		marketService:  marketService,
		feedService:    feedService,
		graphService:   graphService,
		marketsPanel:   marketsPanel,
		bookPanel:      bookPanel,
		ecosystemPanel: ecosystemPanel,
		feedPanel:      feedPanel,
		focusedPanel:   FocusMarkets,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.marketsPanel.Init(),
		m.bookPanel.Init(),
		m.ecosystemPanel.Init(),
		m.feedPanel.Init(),
		m.listenMarketEvents(),
		m.listenFeedEvents(),
		m.tickRefresh(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.focusedPanel = (m.focusedPanel + 1) % 4

		case "shift+tab":
			m.focusedPanel--
			if m.focusedPanel < 0 {
				m.focusedPanel = 3
			}

		case "f1":
			m.focusedPanel = FocusMarkets
		case "f2":
			m.focusedPanel = FocusBook
		case "f3":
			m.focusedPanel = FocusEcosystem
		case "f4":
			m.focusedPanel = FocusFeed
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case panels.MarketUpdateMsg:
		m.handleMarketUpdate(msg)
		cmds = append(cmds, m.listenMarketEvents())

	case panels.FeedUpdateMsg:
		m.feedPanel.AddRecord(msg.Record)
		cmds = append(cmds, m.listenFeedEvents())

	case tickMsg:
		m.refreshAll()
		cmds = append(cmds, m.tickRefresh())
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusMarkets:
		m.marketsPanel, cmd = m.marketsPanel.Update(msg)
		if sku := m.marketsPanel.SelectedSKU(); sku != "" && sku != m.bookPanel.SKU() {
			if mk, err := m.marketService.GetMarket(sku); err == nil {
				m.bookPanel.SetMarket(mk)
			}
		}
	case FocusBook:
		m.bookPanel, cmd = m.bookPanel.Update(msg)
	case FocusEcosystem:
		m.ecosystemPanel, cmd = m.ecosystemPanel.Update(msg)
	case FocusFeed:
		m.feedPanel, cmd = m.feedPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.marketsPanel.SetFocus(m.focusedPanel == FocusMarkets)
	m.bookPanel.SetFocus(m.focusedPanel == FocusBook)
	m.ecosystemPanel.SetFocus(m.focusedPanel == FocusEcosystem)
	m.feedPanel.SetFocus(m.focusedPanel == FocusFeed)

	// Layout:
	// ┌────────────┬─────────────┬──────────────┐
	// │  Markets   │    Book     │  Ecosystem   │
	// ├────────────┴─────────────┴──────────────┤
	// │               A2A Queries               │
	// └─────────────────────────────────────────┘

	leftWidth := m.width / 3
	middleWidth := m.width / 3
	rightWidth := m.width - leftWidth - middleWidth

	topHeight := (m.height - 1) * 2 / 3
	bottomHeight := m.height - topHeight - 1

	m.marketsPanel.SetSize(leftWidth, topHeight)
	m.bookPanel.SetSize(middleWidth, topHeight)
	m.ecosystemPanel.SetSize(rightWidth, topHeight)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.marketsPanel.View(),
		m.bookPanel.View(),
		m.ecosystemPanel.View(),
	)

	m.feedPanel.SetSize(m.width, bottomHeight)
	bottomRow := m.feedPanel.View()

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow, statusBar)
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("F1-F4") + " panels",
		styles.StatusBarKeyStyle.Render("Tab") + " navigate",
		styles.StatusBarKeyStyle.Render("↑↓") + " select",
		styles.StatusBarKeyStyle.Render("q") + " quit",
	}
	helpStr := lipgloss.JoinHorizontal(lipgloss.Center,
		help[0], " │ ", help[1], " │ ", help[2], " │ ", help[3])

	return styles.StatusBarStyle.Width(m.width).Render(helpStr)
}

func (m *Model) handleMarketUpdate(msg panels.MarketUpdateMsg) {
	m.marketsPanel.SetSnapshot(m.marketService.Snapshot())

	if msg.SKU == m.bookPanel.SKU() {
		if mk, err := m.marketService.GetMarket(msg.SKU); err == nil {
			m.bookPanel.SetMarket(mk)
		}
	}
}

func (m *Model) refreshAll() {
	m.marketsPanel.SetSnapshot(m.marketService.Snapshot())

	if sku := m.bookPanel.SKU(); sku != "" {
		if mk, err := m.marketService.GetMarket(sku); err == nil {
			m.bookPanel.SetMarket(mk)
		}
	}

	m.feedPanel.SetRecords(m.feedService.Latest(50))

	// Feed growth drives the layout's agent-to-agent edge budget.
	m.graphService.SetQueryCount(int(m.feedService.Total()))
	nodes, edges := m.graphService.Snapshot()
	logW, logH := m.graphService.Size()
	m.ecosystemPanel.SetGraph(nodes, edges, logW, logH)
}

func (m *Model) listenMarketEvents() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.marketService.Events()
		if !ok {
			return nil
		}
		return panels.MarketUpdateMsg{SKU: ev.SKU, Event: ev.Event}
	}
}

func (m *Model) listenFeedEvents() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.feedService.Events()
		if !ok {
			return nil
		}
		return panels.FeedUpdateMsg{Record: ev.Record}
	}
}

// tickMsg is sent periodically to refresh data.
type tickMsg struct{}

func (m *Model) tickRefresh() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}
