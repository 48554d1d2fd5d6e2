// Package render draws the road network and strategy-comparison charts with
// gonum/plot. It is a presentation consumer of search results: nothing here
// feeds back into the search.
package render

import (
	"fmt"
	"os"

	"github.com/kilianp07/evrouter/infra/logger"
)

// Config defines settings for chart output.
type Config struct {
	// Enabled turns rendering on for the compare command.
	Enabled bool `json:"enabled"`
	// OutputDir is the directory chart files are written into. Created on
	// first use.
	OutputDir string `json:"output_dir"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "outputs"
	}
}

// Renderer writes charts under the configured output directory.
type Renderer struct {
	cfg Config
	log logger.Logger
}

// New creates a Renderer from the configuration.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg, log: logger.New("render")}
}

// ensureOutputDir creates the output directory if needed.
func (r *Renderer) ensureOutputDir() error {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("render: create output dir: %w", err)
	}
	return nil
}
