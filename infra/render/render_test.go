package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/evrouter/core/model"
	"github.com/kilianp07/evrouter/core/network"
)

func assertFileNotEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "expected %s to exist", path)
	assert.Positive(t, info.Size())
}

func TestComparisonCharts(t *testing.T) {
	dir := t.TempDir()
	r := New(Config{Enabled: true, OutputDir: dir})

	labels := []string{"ucs", "astar"}
	results := []model.SearchResult{
		{Path: model.Path{"A", "C"}, Cost: 5.1, NodesExpanded: 3, Runtime: 120 * time.Microsecond},
		{Path: model.Path{"A", "C"}, Cost: 5.1, NodesExpanded: 2, Runtime: 95 * time.Microsecond},
	}
	require.NoError(t, r.ComparisonCharts(labels, results))

	for _, name := range []string{"nodes_expanded.png", "runtime.png", "cost.png"} {
		assertFileNotEmpty(t, filepath.Join(dir, name))
	}
}

func TestComparisonCharts_UnreachablePlotsZero(t *testing.T) {
	dir := t.TempDir()
	r := New(Config{OutputDir: dir})

	results := []model.SearchResult{
		{Cost: math.Inf(1), NodesExpanded: 1},
		{Cost: math.Inf(1), NodesExpanded: 1},
	}
	require.NoError(t, r.ComparisonCharts([]string{"ucs", "astar"}, results))
	assertFileNotEmpty(t, filepath.Join(dir, "cost.png"))
}

func TestComparisonCharts_LabelMismatch(t *testing.T) {
	r := New(Config{OutputDir: t.TempDir()})
	err := r.ComparisonCharts([]string{"ucs"}, nil)
	assert.Error(t, err)
}

func TestNetworkMap(t *testing.T) {
	dir := t.TempDir()
	r := New(Config{OutputDir: dir})
	net := network.Default()

	routes := map[string]model.Path{
		"ucs":   {"A", "C"},
		"astar": {"A", "C"},
	}
	require.NoError(t, r.NetworkMap(net, routes))
	assertFileNotEmpty(t, filepath.Join(dir, "map.png"))
}

func TestNetworkMap_EmptyRoutes(t *testing.T) {
	dir := t.TempDir()
	r := New(Config{OutputDir: dir})

	require.NoError(t, r.NetworkMap(network.Default(), nil))
	assertFileNotEmpty(t, filepath.Join(dir, "map.png"))
}
