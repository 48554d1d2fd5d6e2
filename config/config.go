package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	coremetrics "github.com/kilianp07/evrouter/core/metrics"
	"github.com/kilianp07/evrouter/core/network"
	"github.com/kilianp07/evrouter/infra/render"
)

// Config is the full configuration of the router.
type Config struct {
	Logging LoggingConfig      `json:"logging"`
	Network network.Config     `json:"network"`
	Metrics coremetrics.Config `json:"metrics"`
	Render  render.Config      `json:"render"`
	Compare CompareConfig      `json:"compare"`
}

// Load reads the configuration file at path (yaml or json by extension),
// applies EV_-prefixed environment overrides and validates every section.
// A missing or empty network section falls back to the built-in reference
// city.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides: EV_LOGGING__LEVEL=debug etc. The
	// callback flattens "__" to the koanf delimiter, so the provider must
	// split on "." to nest the keys.
	if err := k.Load(env.Provider("EV_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ev_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given: reference
// city, info logging, no sinks, rendering into ./outputs.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Logging.SetDefaults()
	c.Metrics.SetDefaults()
	c.Render.SetDefaults()
	c.Compare.SetDefaults()
	if len(c.Network.Nodes) == 0 {
		c.Network = network.DefaultConfig()
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	return c.Compare.Validate()
}

// CompareConfig defines settings for the strategy-comparison run.
type CompareConfig struct {
	// Repeats is how many times each strategy re-answers the query for the
	// runtime statistics. Results are identical across repeats; only the
	// timing varies.
	Repeats int `json:"repeats"`
}

// SetDefaults applies sane defaults.
func (c *CompareConfig) SetDefaults() {
	if c.Repeats == 0 {
		c.Repeats = 20
	}
}

// Validate checks mandatory fields.
func (c CompareConfig) Validate() error {
	if c.Repeats < 1 {
		return fmt.Errorf("compare repeats must be at least 1, got %d", c.Repeats)
	}
	return nil
}
