package console

import (
	"sync"

	"github.com/sirupsen/logrus"

	feedservice "github.com/agentfair/agorasim/internal/a2afeed/service"
	"github.com/agentfair/agorasim/internal/catalog"
	graphservice "github.com/agentfair/agorasim/internal/graph/service"
	marketservice "github.com/agentfair/agorasim/internal/market/service"
)

// Console owns all simulation subsystems and manages their lifecycle.
type Console struct {
	Catalog catalog.Catalog
	Market  *marketservice.MarketService
	Feed    *feedservice.FeedService
	Graph   *graphservice.GraphService

	mu sync.Mutex
}

// New loads the catalog and wires up all services.
func New(cfg Config, log *logrus.Logger) (*Console, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	entry := logrus.NewEntry(log)
	c := &Console{Catalog: cat}

	c.Market = marketservice.NewMarketService(cat.Products, cat.Roster(), cfg.Market, entry)
	c.Feed = feedservice.NewFeedService(cat.Roster(), cat.SKUs(), cfg.Feed, entry)
	c.Graph = graphservice.NewGraphService(cat.Agents, cat.Sellers, int(c.Feed.Total()), cfg.Graph, entry)

	return c, nil
}

// Close shuts down all subsystems in reverse dependency order.
func (c *Console) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Graph != nil {
		c.Graph.Close()
	}
	if c.Feed != nil {
		c.Feed.Close()
	}
	if c.Market != nil {
		c.Market.Close()
	}
}
