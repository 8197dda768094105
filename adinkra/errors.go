package adinkra

import "errors"

// Sentinel errors for Adinkra graph construction and the graph→code
// mapping. Matched by callers with errors.Is.
var (
	// ErrBadKind indicates a node kind other than Bosonic or Fermionic.
	ErrBadKind = errors.New("adinkra: node kind must be bosonic or fermionic")

	// ErrBadParameter indicates an invalid generator parameter
	// (non-positive node counts or dimension).
	ErrBadParameter = errors.New("adinkra: invalid generator parameter")

	// ErrNodeNotFound indicates an edge endpoint referencing an unknown node ID.
	ErrNodeNotFound = errors.New("adinkra: node not found")

	// ErrNotBipartite indicates an edge between two nodes of the same kind.
	ErrNotBipartite = errors.New("adinkra: edge endpoints must have opposite kinds")

	// ErrColorRange indicates a color outside [0, Dimension).
	ErrColorRange = errors.New("adinkra: color outside graph dimension")

	// ErrDuplicateEdge indicates a second edge of the same color between a node pair.
	ErrDuplicateEdge = errors.New("adinkra: duplicate edge color between node pair")

	// ErrEmptyPartition indicates a code mapping attempted on a graph
	// missing one side of the bipartition (no bosonic or no fermionic nodes).
	ErrEmptyPartition = errors.New("adinkra: mapping requires both bosonic and fermionic nodes")

	// ErrColorIncomplete indicates a node untouched by some color during a
	// structural audit (every Adinkra node must carry every generator color).
	ErrColorIncomplete = errors.New("adinkra: node missing an edge of some color")
)
