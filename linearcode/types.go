package linearcode

import "github.com/katalvlaran/gatescode/gf2"

// distanceUnknown marks a not-yet-computed cached minimum distance.
const distanceUnknown = -1

// defaultMaxBruteForceK bounds the exhaustive nearest-codeword search;
// 2^16 codewords is the largest space this toy decoder will walk by default.
const defaultMaxBruteForceK = 16

// Code is a binary linear block code with block length n and message
// length k. It is immutable after construction apart from the internal
// minimum-distance cache, which makes MinimumDistance (and the methods
// that call it) unsafe for concurrent use on the same Code.
type Code struct {
	n, k int

	g *gf2.Matrix // generator, k×n
	h *gf2.Matrix // parity check, (n−k)×n
	ht *gf2.Matrix // h transposed, kept for syndrome computation

	// msgPos[i] is the column of G carrying the i-th message bit when G is
	// systematic (each row owns a unit column); nil otherwise.
	msgPos []int

	d int // cached minimum distance; distanceUnknown until first request
}

// DecodeOptions tunes Decode behavior.
//
// Fields:
//   - MaxBruteForceK — largest k for which the exhaustive 2^k
//     nearest-codeword search is permitted. Decoding a code with a larger
//     k (when the search is needed) fails with ErrSearchSpace instead of
//     silently burning CPU.
type DecodeOptions struct {
	MaxBruteForceK int
}

// DefaultDecodeOptions returns the DecodeOptions used by Decode:
// MaxBruteForceK = 16.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{MaxBruteForceK: defaultMaxBruteForceK}
}
