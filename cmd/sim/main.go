package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/agentfair/agorasim/internal/catalog"
	graphcore "github.com/agentfair/agorasim/internal/graph/core"
	marketcore "github.com/agentfair/agorasim/internal/market/core"
	"github.com/agentfair/agorasim/tui/styles"
)

// sim runs the market and layout engines headless for a fixed number of
// iterations and prints the resulting state. Useful for eyeballing the
// simulation without a terminal UI, and for reproducing a seed.
func main() {
	ticks := flag.Int("ticks", 500, "market ticks to run per listing")
	steps := flag.Int("steps", 300, "layout integrator steps to run")
	seed := flag.Int64("seed", 0, "simulation seed; 0 uses the clock")
	catalogPath := flag.String("catalog", "", "path to catalog YAML; empty uses the built-in one")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		loaded, err := catalog.Load(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
		cat = loaded
	}

	fmt.Printf("seed %d\n\n", *seed)
	runMarkets(cat, *ticks, *seed)
	runLayout(cat, *steps, *seed)
}

func runMarkets(cat catalog.Catalog, ticks int, seed int64) {
	cfg := marketcore.MarketConfig{Roster: cat.Roster()}
	now := time.Now().UnixNano()

	fmt.Printf("%-14s %9s %9s %9s %7s %6s\n", "SKU", "Last", "Hi24h", "Lo24h", "Trades", "Buy%")
	for i, p := range cat.Products {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		m := marketcore.NewMarket(cfg, p.SKU, p.Title, marketcore.Price(p.Offer.Price), now, rng)

		for t := 0; t < ticks; t++ {
			now += int64(time.Second)
			m, _ = m.Tick(now, rng)
		}

		fmt.Printf("%-14s %9s %9s %9s %7d %5.0f%%\n",
			m.SKU,
			styles.FormatPrice(int64(m.LastPrice)),
			styles.FormatPrice(int64(m.High24h)),
			styles.FormatPrice(int64(m.Low24h)),
			m.TradeCount24h,
			m.BuyPressure()*100,
		)
	}
	fmt.Println()
}

func runLayout(cat catalog.Catalog, steps int, seed int64) {
	const width, height = 800.0, 600.0

	rng := rand.New(rand.NewSource(seed))
	nodes, edges := graphcore.BuildGraph(cat.Agents, cat.Sellers, len(cat.Agents), width, height, rng)

	cfg := graphcore.DefaultForceConfig()
	for s := 0; s < steps; s++ {
		graphcore.Step(nodes, edges, cfg, width, height)
	}

	fmt.Printf("layout: %d nodes, %d edges after %d steps\n", len(nodes), len(edges), steps)
	for _, n := range nodes {
		dx, dy := n.X-width/2, n.Y-height/2
		fmt.Printf("  %-10s %-6v x=%6.1f y=%6.1f r=%4.1f dist=%6.1f %s\n",
			n.ID, n.Kind, n.X, n.Y, n.Radius, math.Hypot(dx, dy), n.Color)
	}
}
