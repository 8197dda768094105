package adinkra

import (
	"fmt"

	"github.com/katalvlaran/gatescode/gf2"
	"github.com/katalvlaran/gatescode/linearcode"
)

// opToLinearCode tags mapping errors.
const opToLinearCode = "ToLinearCode"

// ToLinearCode derives a linear block code from the graph's edge and
// dashing structure.
//
// Convention (fixed; see the package docs): codeword width
// n = BosonicCount × FermionicCount, slot i·nF+j for the (bosonic i,
// fermionic j) pair; one stacked row per color in ascending color order;
// an undashed edge contributes 1 at its slot and a dashed edge the
// GF(2)-flipped bit 0, same as absence. The stack is row-reduced to a
// full-rank generator G (k = rank) and the parity-check matrix H spans
// G's orthogonal complement, so G·Hᵀ = 0 by construction.
//
// The derivation is pure: the graph is never mutated, and repeated calls
// on an unmodified graph return codes with identical G and H (node order
// is insertion order and edges are scanned by index, never from a map).
//
// Returns ErrEmptyPartition when either node partition is empty, and
// linearcode.ErrDegenerateCode when every stacked row cancels to zero
// (e.g. an all-dashed graph).
func (g *Graph) ToLinearCode() (*linearcode.Code, error) {
	nB, nF := len(g.bosonic), len(g.fermionic)
	if nB == 0 || nF == 0 {
		return nil, fmt.Errorf("%s: %d bosonic, %d fermionic: %w",
			opToLinearCode, nB, nF, ErrEmptyPartition)
	}

	stacked, err := gf2.NewMatrix(g.dimension, nB*nF)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opToLinearCode, err)
	}
	for _, e := range g.edges {
		if e.Dashed {
			continue // dashed edge: presence bit flipped to 0
		}
		slot := g.partIndex[e.Bosonic]*nF + g.partIndex[e.Fermionic]
		if setErr := stacked.Set(int(e.Color), slot, 1); setErr != nil {
			return nil, fmt.Errorf("%s: %w", opToLinearCode, setErr)
		}
	}

	code, err := linearcode.FromGenerator(stacked)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opToLinearCode, err)
	}

	return code, nil
}
