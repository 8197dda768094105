// Package adinkra models the colored, dashed bipartite graphs used to
// visualize supersymmetry representations, and maps their structure onto
// binary linear block codes.
//
// What:
//
//   - Graph holds bosonic and fermionic nodes and colored edges, each color
//     standing for one SUSY generator; a dashed edge carries a sign flip.
//   - AdjacencyMatrix extracts the bosonic×fermionic 0/1 matrix per color.
//   - ToLinearCode derives a linearcode.Code from the edge and dashing
//     pattern (the Gates et al. observation this module demonstrates).
//   - NewSimple and NewHypercube build the two standard demonstration
//     topologies; Validate audits the classic Adinkra rules.
//
// Why:
//
//   - Pedagogy: the same object read two ways — a SUSY diagram and a
//     generator matrix — with every step explicit and deterministic.
//
// Mapping convention (fixed, documented here because the literature leaves
// it open):
//
//   - Codeword width n = BosonicCount × FermionicCount; position i·nF+j is
//     the (bosonic i, fermionic j) slot, both indices in node insertion
//     order within their partition.
//   - One stacked row per color, colors ascending 0..Dimension-1.
//   - An undashed edge contributes bit 1 at its slot; a dashed edge
//     contributes the GF(2)-flipped bit, 0; absence contributes 0.
//   - The stack is row-reduced to a full-rank generator (k = rank) and the
//     parity check spans its orthogonal complement.
//
// Complexity:
//
//   - AddNode / AddEdge: O(1).
//   - AdjacencyMatrix: O(E).
//   - ToLinearCode: O(E + C·n·rank/64) for C colors and n = nB·nF.
//
// Errors:
//
//   - ErrBadKind, ErrBadParameter, ErrNodeNotFound, ErrNotBipartite,
//     ErrColorRange, ErrDuplicateEdge: incremental construction.
//   - ErrEmptyPartition: mapping on a graph missing one partition.
//   - ErrColorIncomplete: Validate found a node not touched by every color.
//
// Graphs are built incrementally and are not safe for concurrent mutation;
// ToLinearCode is a pure read-only derivation and never mutates the graph.
package adinkra
