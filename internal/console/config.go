package console

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	feedservice "github.com/agentfair/agorasim/internal/a2afeed/service"
	graphservice "github.com/agentfair/agorasim/internal/graph/service"
	marketservice "github.com/agentfair/agorasim/internal/market/service"
	"github.com/agentfair/agorasim/pkg/logger"
)

// Config holds configuration for the console.
type Config struct {
	// CatalogPath is an optional YAML catalog; empty uses the built-in one.
	CatalogPath string `yaml:"catalog_path"`

	Log    logger.Config        `yaml:"log"`
	Market marketservice.Config `yaml:"-"`
	Graph  graphservice.Config  `yaml:"-"`
	Feed   feedservice.Config   `yaml:"-"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Log:    logger.DefaultConfig(),
		Market: marketservice.DefaultConfig(),
		Graph:  graphservice.DefaultConfig(),
		Feed:   feedservice.DefaultConfig(),
	}
}

// LoadConfig reads a console config file, filling gaps with defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
