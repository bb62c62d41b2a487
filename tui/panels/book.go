package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentfair/agorasim/internal/market/core"
	"github.com/agentfair/agorasim/tui/styles"
)

// BookPanel displays the order book and recent trades for one listing.
type BookPanel struct {
	market    core.Market
	hasMarket bool
	focused   bool
	width     int
	height    int
	maxLevels int
}

// NewBookPanel creates a new book panel.
func NewBookPanel() *BookPanel {
	return &BookPanel{
		maxLevels: 10,
	}
}

// Init initializes the panel.
func (p *BookPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *BookPanel) Update(msg tea.Msg) (*BookPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *BookPanel) View() string {
	var content strings.Builder

	title := "No listing selected"
	if p.hasMarket {
		title = fmt.Sprintf("%s - %s", p.market.SKU, p.market.Title)
	}

	availableHeight := p.height - 10
	levelsToShow := availableHeight / 2
	if levelsToShow > p.maxLevels {
		levelsToShow = p.maxLevels
	}
	if levelsToShow < 3 {
		levelsToShow = 3
	}

	if p.hasMarket {
		content.WriteString(p.renderKPIs())
		content.WriteString("\n")
	}

	header := fmt.Sprintf("%6s %9s │ %9s %6s", "BidSz", "Bid", "Ask", "AskSz")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	bids := p.market.Bids.Entries()
	asks := p.market.Asks.Entries()
	if len(bids) > levelsToShow {
		bids = bids[:levelsToShow]
	}
	if len(asks) > levelsToShow {
		asks = asks[:levelsToShow]
	}

	maxRows := len(bids)
	if len(asks) > maxRows {
		maxRows = len(asks)
	}

	for i := 0; i < maxRows; i++ {
		bidPart := fmt.Sprintf("%6s %9s", "", "")
		askPart := fmt.Sprintf("%9s %6s", "", "")

		if i < len(bids) {
			bidPart = fmt.Sprintf("%6d %9s", bids[i].Qty, styles.FormatPrice(int64(bids[i].Price)))
		}
		if i < len(asks) {
			askPart = fmt.Sprintf("%9s %6d", styles.FormatPrice(int64(asks[i].Price)), asks[i].Qty)
		}

		content.WriteString(fmt.Sprintf("%s │ %s\n",
			styles.BuyStyle.Render(bidPart),
			styles.SellStyle.Render(askPart),
		))
	}

	content.WriteString("\n")
	content.WriteString(styles.HeaderStyle.Render("Recent Trades"))
	content.WriteString("\n")

	trades := p.market.Trades
	if len(trades) > 5 {
		trades = trades[:5]
	}
	for _, tr := range trades {
		line := fmt.Sprintf("%4d @ %9s  %s → %s",
			tr.Qty,
			styles.FormatPrice(int64(tr.Price)),
			tr.BuyerAgent,
			tr.SellerAgent,
		)
		content.WriteString(styles.RowStyle.Render(line))
		content.WriteString("\n")
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	titleBar := styles.RenderTitle(title, p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, titleBar, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *BookPanel) renderKPIs() string {
	m := p.market

	last := styles.PriceStyle.Render(styles.FormatPrice(int64(m.LastPrice)))
	high := styles.PriceUpStyle.Render(styles.FormatPrice(int64(m.High24h)))
	low := styles.PriceDownStyle.Render(styles.FormatPrice(int64(m.Low24h)))

	spreadStr := "-"
	if spread, ok := m.Spread(); ok {
		spreadStr = styles.FormatPrice(int64(spread))
	}

	line1 := fmt.Sprintf("Last %s  Hi %s  Lo %s", last, high, low)
	line2 := fmt.Sprintf("Spread %s  Trades24h %d  BuyPressure %.0f%%",
		spreadStr, m.TradeCount24h, m.BuyPressure()*100)

	return line1 + "\n" + styles.SizeStyle.Render(line2) + "\n"
}

// SetFocus sets the focus state of the panel.
func (p *BookPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *BookPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetMarket replaces the displayed market snapshot.
func (p *BookPanel) SetMarket(m core.Market) {
	p.market = m
	p.hasMarket = true
}

// SKU returns the SKU currently shown, or "" when none is set.
func (p *BookPanel) SKU() string {
	if !p.hasMarket {
		return ""
	}
	return p.market.SKU
}
