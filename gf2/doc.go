// Package gf2 provides bit-packed vectors and matrices over the two-element
// field GF(2), together with the elimination kernels the rest of the module
// is built on.
//
// What:
//
//   - Vector and Matrix store bits in []uint64 words; addition is XOR,
//     multiplication is AND, and matrix products accumulate by XOR-parity.
//   - Elimination kernels: RowReduce (reduced row-echelon form), Rank,
//     and NullSpace — all with a deterministic pivot rule.
//   - Products: Add, Mul, MatVec (column orientation) and VecMat (the
//     row-vector · matrix orientation used by code encoding).
//
// Why:
//
//   - Coding theory: generator/parity-check algebra, syndromes, distances.
//   - Making the field explicit: word-level XOR/AND leaves no room for
//     accidental real-number arithmetic.
//
// Complexity (w = ⌈cols/64⌉ words per row):
//
//   - Vector ops (Xor, And, Weight): O(w).
//   - Mul: O(rows·cols·w) worst case, word-parallel inner loop.
//   - RowReduce / Rank / NullSpace: O(rows·cols·w).
//
// Determinism:
//
//   - Pivot selection is always the first 1 in the leftmost unresolved
//     column scanning top-down; null-space basis rows follow ascending
//     free-column order. Equal inputs yield bit-identical outputs.
//
// Errors:
//
//   - ErrBadShape: negative dimension or ragged row input.
//   - ErrOutOfRange: bit/element index outside valid bounds.
//   - ErrDimensionMismatch: incompatible operand dimensions.
//   - ErrNilOperand: nil *Vector or *Matrix operand.
//
// Zero-extent values are legal: a length-0 Vector (the syndrome of a rate-1
// code) and a 0-row Matrix (the parity-check matrix of a full-rank square
// generator, or an empty null-space basis) behave as proper identities.
package gf2
