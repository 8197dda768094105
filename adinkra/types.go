package adinkra

import "fmt"

// Kind labels the two sides of the bipartition.
type Kind uint8

const (
	// Bosonic marks a bosonic field node.
	Bosonic Kind = iota
	// Fermionic marks a fermionic field node.
	Fermionic
)

// String renders the kind as "bosonic" or "fermionic".
func (k Kind) String() string {
	switch k {
	case Bosonic:
		return "bosonic"
	case Fermionic:
		return "fermionic"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Color indexes a SUSY generator; valid values are [0, Graph.Dimension).
// The first four carry the traditional display names.
type Color int

const (
	// Red is generator color 0.
	Red Color = iota
	// Green is generator color 1.
	Green
	// Blue is generator color 2.
	Blue
	// Yellow is generator color 3.
	Yellow
)

// String renders the color by name for the first four, "color(i)" beyond.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// Node is a vertex of the bipartite graph.
type Node struct {
	// ID is the node's index in graph insertion order.
	ID int
	// Kind selects the bosonic or fermionic partition.
	Kind Kind
	// Label is an optional display name (e.g. "phi_0", "101").
	Label string
}

// Edge joins one bosonic and one fermionic node with a colored, possibly
// dashed line. Dashing is the sign bit of the SUSY transformation and maps
// to a GF(2) bit flip in the derived code.
type Edge struct {
	// Bosonic is the bosonic endpoint's node ID.
	Bosonic int
	// Fermionic is the fermionic endpoint's node ID.
	Fermionic int
	// Color is the SUSY generator index of this edge.
	Color Color
	// Dashed marks the sign flip.
	Dashed bool
}

// edgeKey identifies the (pair, color) slot an edge occupies; at most one
// edge may hold a given key.
type edgeKey struct {
	bosonic, fermionic int
	color              Color
}

// Graph is a colored, dashed bipartite multigraph with a fixed number of
// generator colors. It owns its nodes and edges exclusively and is built
// incrementally; mutation is not safe for concurrent use.
type Graph struct {
	dimension int

	nodes     []Node
	bosonic   []int // node IDs, insertion order
	fermionic []int // node IDs, insertion order
	partIndex []int // per node ID: position within its partition

	edges   []Edge
	edgeSet map[edgeKey]struct{}
}

// NewGraph returns an empty graph with the given number of generator
// colors. Returns ErrBadParameter for dimension < 1.
func NewGraph(dimension int) (*Graph, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("NewGraph: dimension=%d: %w", dimension, ErrBadParameter)
	}

	return &Graph{
		dimension: dimension,
		edgeSet:   make(map[edgeKey]struct{}),
	}, nil
}
