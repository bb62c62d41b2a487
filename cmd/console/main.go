package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentfair/agorasim/internal/console"
	"github.com/agentfair/agorasim/pkg/logger"
	"github.com/agentfair/agorasim/tui"
)

func main() {
	configPath := flag.String("config", "", "path to console config YAML")
	catalogPath := flag.String("catalog", "", "path to catalog YAML (overrides config)")
	logFile := flag.String("log-file", "agorasim.log", "log file path (the TUI owns the terminal)")
	seed := flag.Int64("seed", 0, "simulation seed; 0 uses the clock")
	flag.Parse()

	cfg := console.DefaultConfig()
	if *configPath != "" {
		loaded, err := console.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if cfg.Log.OutputFile == "" {
		cfg.Log.OutputFile = *logFile
	}
	if *seed != 0 {
		cfg.Market.Seed = *seed
		cfg.Graph.Seed = *seed
		cfg.Feed.Seed = *seed
	}

	log := logger.New(cfg.Log)

	c, err := console.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting console: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	model := tui.NewModel(c.Market, c.Feed, c.Graph)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
