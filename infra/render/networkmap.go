package render

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kilianp07/evrouter/core/model"
	"github.com/kilianp07/evrouter/core/network"
)

var pathColors = []color.Color{
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
}

// NetworkMap draws the road network with charging stations highlighted and
// the given routes overlaid, one color per label. Locations without a
// coordinate are skipped. The file is written as map.png in the output
// directory.
func (r *Renderer) NetworkMap(net *network.Network, routes map[string]model.Path) error {
	if err := r.ensureOutputDir(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "EV Charging-Station Routes"
	p.HideAxes()

	if err := addEdges(p, net); err != nil {
		return err
	}

	labels := make([]string, 0, len(routes))
	for label := range routes {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for i, label := range labels {
		if err := addRoute(p, net, routes[label], label, pathColors[i%len(pathColors)]); err != nil {
			return err
		}
	}

	if err := addNodes(p, net); err != nil {
		return err
	}

	path := filepath.Join(r.cfg.OutputDir, "map.png")
	if err := p.Save(7*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	r.log.Debugf("wrote %s", path)
	return nil
}

// addEdges draws every road once, skipping the duplicate reverse direction.
func addEdges(p *plot.Plot, net *network.Network) error {
	for _, from := range net.Locations() {
		a, ok := net.Coordinate(from)
		if !ok {
			continue
		}
		for _, e := range net.Neighbors(from) {
			if e.To < from {
				continue
			}
			b, ok := net.Coordinate(e.To)
			if !ok {
				continue
			}
			line, err := plotter.NewLine(plotter.XYs{{X: a.X(), Y: a.Y()}, {X: b.X(), Y: b.Y()}})
			if err != nil {
				return fmt.Errorf("render: edge %s-%s: %w", from, e.To, err)
			}
			line.LineStyle.Color = color.Gray{Y: 0x99}
			p.Add(line)
		}
	}
	return nil
}

func addRoute(p *plot.Plot, net *network.Network, route model.Path, label string, c color.Color) error {
	if len(route) < 2 {
		return nil
	}
	xys := make(plotter.XYs, 0, len(route))
	for _, loc := range route {
		pt, ok := net.Coordinate(loc)
		if !ok {
			continue
		}
		xys = append(xys, plotter.XY{X: pt.X(), Y: pt.Y()})
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("render: route %s: %w", label, err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

func addNodes(p *plot.Plot, net *network.Network) error {
	var stations, regular plotter.XYs
	var xys plotter.XYs
	var names []string
	for _, loc := range net.Locations() {
		pt, ok := net.Coordinate(loc)
		if !ok {
			continue
		}
		xy := plotter.XY{X: pt.X(), Y: pt.Y()}
		if net.IsChargingStation(loc) {
			stations = append(stations, xy)
		} else {
			regular = append(regular, xy)
		}
		xys = append(xys, xy)
		names = append(names, string(loc))
	}

	if len(regular) > 0 {
		s, err := plotter.NewScatter(regular)
		if err != nil {
			return fmt.Errorf("render: nodes: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(5)
		s.GlyphStyle.Color = color.Gray{Y: 0xcc}
		p.Add(s)
	}
	if len(stations) > 0 {
		s, err := plotter.NewScatter(stations)
		if err != nil {
			return fmt.Errorf("render: stations: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(6)
		s.GlyphStyle.Color = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
		p.Add(s)
		p.Legend.Add("charging station", s)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return fmt.Errorf("render: labels: %w", err)
	}
	p.Add(labels)
	return nil
}
