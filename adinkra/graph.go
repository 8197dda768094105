package adinkra

import (
	"fmt"

	"github.com/katalvlaran/gatescode/gf2"
)

// Operation name constants for unified error wrapping.
const (
	opAddNode   = "AddNode"
	opAddEdge   = "AddEdge"
	opAdjacency = "AdjacencyMatrix"
	opValidate  = "Validate"
)

// Dimension returns the number of generator colors.
func (g *Graph) Dimension() int { return g.dimension }

// NodeCount returns the total number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// BosonicCount returns the size of the bosonic partition.
func (g *Graph) BosonicCount() int { return len(g.bosonic) }

// FermionicCount returns the size of the fermionic partition.
func (g *Graph) FermionicCount() int { return len(g.fermionic) }

// Nodes returns a copy of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Node returns the node with the given ID.
// Returns ErrNodeNotFound for an unknown ID.
func (g *Graph) Node(id int) (Node, error) {
	if id < 0 || id >= len(g.nodes) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return g.nodes[id], nil
}

// AddNode appends a node of the given kind and returns its ID.
// Returns ErrBadKind unless kind is Bosonic or Fermionic.
func (g *Graph) AddNode(kind Kind, label string) (int, error) {
	if kind != Bosonic && kind != Fermionic {
		return 0, fmt.Errorf("%s: kind=%d: %w", opAddNode, kind, ErrBadKind)
	}
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Kind: kind, Label: label})
	if kind == Bosonic {
		g.partIndex = append(g.partIndex, len(g.bosonic))
		g.bosonic = append(g.bosonic, id)
	} else {
		g.partIndex = append(g.partIndex, len(g.fermionic))
		g.fermionic = append(g.fermionic, id)
	}

	return id, nil
}

// AddEdge joins nodes a and b with an edge of the given color and dashing.
// Endpoint order does not matter; the edge is stored bosonic-first.
//
// Returns ErrNodeNotFound for unknown IDs, ErrNotBipartite when both
// endpoints share a kind, ErrColorRange for a color outside
// [0, Dimension), and ErrDuplicateEdge when an edge of that color already
// joins the pair.
func (g *Graph) AddEdge(a, b int, color Color, dashed bool) error {
	na, err := g.Node(a)
	if err != nil {
		return fmt.Errorf("%s: %w", opAddEdge, err)
	}
	nb, err := g.Node(b)
	if err != nil {
		return fmt.Errorf("%s: %w", opAddEdge, err)
	}
	if na.Kind == nb.Kind {
		return fmt.Errorf("%s: %d and %d are both %s: %w",
			opAddEdge, a, b, na.Kind, ErrNotBipartite)
	}
	if color < 0 || int(color) >= g.dimension {
		return fmt.Errorf("%s: %s with dimension %d: %w",
			opAddEdge, color, g.dimension, ErrColorRange)
	}

	bos, fer := na.ID, nb.ID
	if na.Kind == Fermionic {
		bos, fer = nb.ID, na.ID
	}
	key := edgeKey{bosonic: bos, fermionic: fer, color: color}
	if _, dup := g.edgeSet[key]; dup {
		return fmt.Errorf("%s: %s edge between %d and %d exists: %w",
			opAddEdge, color, bos, fer, ErrDuplicateEdge)
	}

	g.edges = append(g.edges, Edge{Bosonic: bos, Fermionic: fer, Color: color, Dashed: dashed})
	g.edgeSet[key] = struct{}{}

	return nil
}

// HasEdge reports whether an edge of the given color joins a and b
// (in either endpoint order). Unknown IDs simply report false.
func (g *Graph) HasEdge(a, b int, color Color) bool {
	if _, ok := g.edgeSet[edgeKey{bosonic: a, fermionic: b, color: color}]; ok {
		return true
	}
	_, ok := g.edgeSet[edgeKey{bosonic: b, fermionic: a, color: color}]

	return ok
}

// AdjacencyMatrix returns the BosonicCount × FermionicCount binary matrix
// for one color: entry (i, j) is 1 when an edge of that color joins the
// i-th bosonic and j-th fermionic node (insertion order), regardless of
// dashing. Returns ErrColorRange for a color outside [0, Dimension).
func (g *Graph) AdjacencyMatrix(color Color) (*gf2.Matrix, error) {
	if color < 0 || int(color) >= g.dimension {
		return nil, fmt.Errorf("%s: %s with dimension %d: %w",
			opAdjacency, color, g.dimension, ErrColorRange)
	}
	m, err := gf2.NewMatrix(len(g.bosonic), len(g.fermionic))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAdjacency, err)
	}
	for _, e := range g.edges {
		if e.Color != color {
			continue
		}
		if setErr := m.Set(g.partIndex[e.Bosonic], g.partIndex[e.Fermionic], 1); setErr != nil {
			return nil, fmt.Errorf("%s: %w", opAdjacency, setErr)
		}
	}

	return m, nil
}

// Validate audits the classic Adinkra rules: the bipartite constraint
// (enforced on every AddEdge, re-checked here) and color completeness —
// every node must carry an edge of every generator color.
// Returns ErrColorIncomplete naming the first offending node.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if g.nodes[e.Bosonic].Kind == g.nodes[e.Fermionic].Kind {
			return fmt.Errorf("%s: edge %d-%d: %w", opValidate, e.Bosonic, e.Fermionic, ErrNotBipartite)
		}
	}

	seen := make([]map[Color]struct{}, len(g.nodes))
	for i := range seen {
		seen[i] = make(map[Color]struct{}, g.dimension)
	}
	for _, e := range g.edges {
		seen[e.Bosonic][e.Color] = struct{}{}
		seen[e.Fermionic][e.Color] = struct{}{}
	}
	for id, colors := range seen {
		if len(colors) != g.dimension {
			return fmt.Errorf("%s: node %d carries %d of %d colors: %w",
				opValidate, id, len(colors), g.dimension, ErrColorIncomplete)
		}
	}

	return nil
}
