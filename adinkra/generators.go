package adinkra

import (
	"fmt"
	"math/bits"
)

// File-local constants for method tags and minima (no magic numbers).
const (
	methodNewSimple    = "NewSimple"
	methodNewHypercube = "NewHypercube"

	minPartitionSize = 1
	minDimension     = 1
)

// NewSimple builds the all-pairs demonstration Adinkra: nBosonic φ-nodes,
// nFermionic ψ-nodes, and for every color c an edge between every
// (bosonic i, fermionic j) pair, dashed when i+j+c is odd. Deterministic:
// nodes in index order, edges emitted i-major, then j, then c.
// Returns ErrBadParameter unless all arguments are ≥ 1.
func NewSimple(nBosonic, nFermionic, dimension int) (*Graph, error) {
	if nBosonic < minPartitionSize || nFermionic < minPartitionSize {
		return nil, fmt.Errorf("%s: nBosonic=%d, nFermionic=%d (each must be ≥ %d): %w",
			methodNewSimple, nBosonic, nFermionic, minPartitionSize, ErrBadParameter)
	}
	g, err := NewGraph(dimension)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSimple, err)
	}

	bosIDs := make([]int, nBosonic)
	for i := 0; i < nBosonic; i++ {
		if bosIDs[i], err = g.AddNode(Bosonic, fmt.Sprintf("phi_%d", i)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewSimple, err)
		}
	}
	ferIDs := make([]int, nFermionic)
	for j := 0; j < nFermionic; j++ {
		if ferIDs[j], err = g.AddNode(Fermionic, fmt.Sprintf("psi_%d", j)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewSimple, err)
		}
	}

	for i := 0; i < nBosonic; i++ {
		for j := 0; j < nFermionic; j++ {
			for c := 0; c < dimension; c++ {
				dashed := (i+j+c)%2 == 1
				if err = g.AddEdge(bosIDs[i], ferIDs[j], Color(c), dashed); err != nil {
					return nil, fmt.Errorf("%s: %w", methodNewSimple, err)
				}
			}
		}
	}

	return g, nil
}

// NewHypercube builds the hypercube Adinkra of the given dimension:
// 2^dimension nodes labeled by their binary coordinates (bit 0 is the
// rightmost label character), bosonic when the popcount is even; for each
// vertex pair differing in bit c, one edge of color c, dashed when the
// bosonic endpoint has bit c set (the 1→0 flip direction).
// Returns ErrBadParameter for dimension < 1.
func NewHypercube(dimension int) (*Graph, error) {
	if dimension < minDimension {
		return nil, fmt.Errorf("%s: dimension=%d (must be ≥ %d): %w",
			methodNewHypercube, dimension, minDimension, ErrBadParameter)
	}
	g, err := NewGraph(dimension)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewHypercube, err)
	}

	total := 1 << uint(dimension)
	for v := 0; v < total; v++ {
		kind := Bosonic
		if bits.OnesCount(uint(v))%2 == 1 {
			kind = Fermionic
		}
		// Node ID equals coordinate value because vertices are added in
		// ascending order; the mapping below relies on that.
		if _, err = g.AddNode(kind, fmt.Sprintf("%0*b", dimension, v)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewHypercube, err)
		}
	}

	for v := 0; v < total; v++ {
		for c := 0; c < dimension; c++ {
			if v>>uint(c)&1 == 1 {
				continue // each pair handled once, from its bit-c=0 end
			}
			u := v | 1<<uint(c)
			bos := v
			if bits.OnesCount(uint(v))%2 == 1 {
				bos = u
			}
			dashed := bos>>uint(c)&1 == 1
			if err = g.AddEdge(v, u, Color(c), dashed); err != nil {
				return nil, fmt.Errorf("%s: %w", methodNewHypercube, err)
			}
		}
	}

	return g, nil
}
