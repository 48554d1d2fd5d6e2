package network

// NodeConfig describes one location of the road network.
type NodeConfig struct {
	ID string `json:"id"`
	// X and Y are planar coordinates, used only by the straight-line heuristic
	// and by rendering. Moves are governed by edges alone.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EdgeConfig describes one directed edge. Two-way roads list both directions
// explicitly.
type EdgeConfig struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// Config is the authored description of a road network. Stations lists the
// charging stations; every entry must name a defined node.
type Config struct {
	Nodes    []NodeConfig `json:"nodes"`
	Edges    []EdgeConfig `json:"edges"`
	Stations []string     `json:"stations"`
}

// DefaultConfig returns the built-in reference city: eleven locations A
// through K with charging stations at C, E, G, I and K. Edge distances never
// undercut the straight-line distance between their endpoints, which keeps
// the nearest-station heuristic admissible.
func DefaultConfig() Config {
	return Config{
		Nodes: []NodeConfig{
			{ID: "A", X: 0, Y: 0},
			{ID: "B", X: 3.6, Y: 0},
			{ID: "C", X: 5, Y: 3},
			{ID: "D", X: 8.5, Y: 2.5},
			{ID: "E", X: 10, Y: 5},
			{ID: "F", X: 2, Y: -3},
			{ID: "G", X: 7, Y: 0},
			{ID: "H", X: 11, Y: 1},
			{ID: "I", X: 13, Y: 4},
			{ID: "J", X: 5, Y: -5},
			{ID: "K", X: 10, Y: -2},
		},
		Edges: []EdgeConfig{
			{From: "A", To: "B", Distance: 3.6}, {From: "A", To: "C", Distance: 5.1},
			{From: "B", To: "A", Distance: 3.6}, {From: "B", To: "C", Distance: 3.2},
			{From: "B", To: "D", Distance: 4.2}, {From: "B", To: "F", Distance: 2.8},
			{From: "C", To: "A", Distance: 5.1}, {From: "C", To: "B", Distance: 3.2},
			{From: "C", To: "D", Distance: 4.6}, {From: "C", To: "E", Distance: 3.7},
			{From: "C", To: "G", Distance: 4.1},
			{From: "D", To: "B", Distance: 4.2}, {From: "D", To: "C", Distance: 4.6},
			{From: "D", To: "E", Distance: 2.5}, {From: "D", To: "H", Distance: 3.9},
			{From: "E", To: "C", Distance: 3.7}, {From: "E", To: "D", Distance: 2.5},
			{From: "E", To: "I", Distance: 4.3},
			{From: "F", To: "B", Distance: 2.8}, {From: "F", To: "G", Distance: 3.5},
			{From: "F", To: "J", Distance: 4.7},
			{From: "G", To: "C", Distance: 4.1}, {From: "G", To: "F", Distance: 3.5},
			{From: "G", To: "H", Distance: 2.9}, {From: "G", To: "K", Distance: 3.8},
			{From: "H", To: "D", Distance: 3.9}, {From: "H", To: "G", Distance: 2.9},
			{From: "H", To: "I", Distance: 3.2},
			{From: "I", To: "E", Distance: 4.3}, {From: "I", To: "H", Distance: 3.2},
			{From: "I", To: "J", Distance: 2.6},
			{From: "J", To: "F", Distance: 4.7}, {From: "J", To: "I", Distance: 2.6},
			{From: "J", To: "K", Distance: 3.4},
			{From: "K", To: "G", Distance: 3.8}, {From: "K", To: "J", Distance: 3.4},
		},
		Stations: []string{"C", "E", "G", "I", "K"},
	}
}
