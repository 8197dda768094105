// Package gatescode is a small, pure-Go playground linking linear block
// error-correcting codes to the bipartite "Adinkra" graphs of supersymmetry
// visualization, after the observation by S.J. Gates et al. that certain
// SUSY representations carry the structure of binary codes.
//
// 🚀 What is gatescode?
//
//	An in-memory, single-threaded educational library that brings together:
//		• GF(2) primitives: bit-packed binary vectors & matrices, XOR/AND
//		  arithmetic, Gaussian elimination, rank and null spaces
//		• Linear block codes: encode, syndrome, nearest-codeword decode,
//		  minimum distance, plus the Hamming / repetition / parity families
//		• Adinkra graphs: colored, dashed bipartite graphs with bosonic and
//		  fermionic nodes, per-color adjacency matrices, and a structural
//		  mapping that derives a linear block code from the graph
//
// ✨ Why gatescode?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every derivation yields identical output on every call
//   - Pure Go – no cgo, no I/O, no hidden deps
//   - Honest errors – typed sentinel errors for every failure kind
//
// Everything is organized under three subpackages:
//
//	gf2/        — binary field vectors, matrices & elimination kernels
//	linearcode/ — the (n, k, d) linear block code engine & named families
//	adinkra/    — the colored bipartite graph and its graph→code mapping
//
// Quick ASCII example — a 2-color Adinkra on two bosons and two fermions:
//
//	    φ0 ══ ψ0        ══  solid (undashed) edge
//	    ║  ╳  ┊         ┊┊  dashed edge (GF(2) sign flip)
//	    φ1 ┄┄ ψ1
//
// stacks per-color adjacency rows into a generator matrix and hands back a
// ready-to-use linear block code.
//
// This is explicitly a pedagogical toy, not a production codec: decoding and
// minimum-distance search enumerate all 2^k codewords and are intended for
// small k.
//
//	go get github.com/katalvlaran/gatescode
package gatescode
