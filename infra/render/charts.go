package render

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kilianp07/evrouter/core/model"
)

var barColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // orange
}

// ComparisonCharts writes one bar chart per measure (nodes expanded, runtime,
// cost) comparing the labeled results. An unreachable result contributes a
// zero-height cost bar; the chart is descriptive, the authoritative outcome
// stays in the result record.
func (r *Renderer) ComparisonCharts(labels []string, results []model.SearchResult) error {
	if len(labels) != len(results) {
		return fmt.Errorf("render: %d labels for %d results", len(labels), len(results))
	}
	if err := r.ensureOutputDir(); err != nil {
		return err
	}

	expanded := make(plotter.Values, len(results))
	runtimes := make(plotter.Values, len(results))
	costs := make(plotter.Values, len(results))
	for i, res := range results {
		expanded[i] = float64(res.NodesExpanded)
		runtimes[i] = res.Runtime.Seconds() * 1000
		if math.IsInf(res.Cost, 1) {
			r.log.Warnf("unreachable result for %s, plotting zero cost", labels[i])
			costs[i] = 0
		} else {
			costs[i] = res.Cost
		}
	}

	charts := []struct {
		file   string
		title  string
		yLabel string
		values plotter.Values
	}{
		{"nodes_expanded.png", "Nodes Expanded", "Count", expanded},
		{"runtime.png", "Runtime", "Time (ms)", runtimes},
		{"cost.png", "Total Cost", "Distance (km)", costs},
	}
	for _, c := range charts {
		if err := r.barChart(labels, c.values, c.title, c.yLabel, filepath.Join(r.cfg.OutputDir, c.file)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) barChart(labels []string, values plotter.Values, title, yLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("render: bar chart %q: %w", title, err)
	}
	bars.LineStyle.Width = 0
	bars.Color = barColors[0]
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	r.log.Debugf("wrote %s", path)
	return nil
}
