package linearcode

import "errors"

// Sentinel errors for linear block code construction and use. Constructors
// and operations return these (wrapped with operation context via %w) and
// callers branch on failure kind with errors.Is.
var (
	// ErrShapeMismatch indicates dimensionally inconsistent generator and
	// parity-check matrices at construction (G must be k×n with 1 ≤ k ≤ n,
	// H must be (n−k)×n).
	ErrShapeMismatch = errors.New("linearcode: generator/parity-check shape mismatch")

	// ErrNotOrthogonal indicates the construction invariant G·Hᵀ = 0 failed.
	ErrNotOrthogonal = errors.New("linearcode: generator rows not orthogonal to parity-check rows")

	// ErrRankDeficient indicates rank(G) < k or rank(H) < n−k.
	ErrRankDeficient = errors.New("linearcode: matrix is rank deficient")

	// ErrVectorLength indicates an operation was given a vector of the
	// wrong length (Encode wants k bits; Syndrome and Decode want n bits).
	ErrVectorLength = errors.New("linearcode: vector has wrong length")

	// ErrDegenerateCode indicates a decode on a degenerate code (n = 0 or
	// k = 0), or a generator whose rank collapsed to zero.
	ErrDegenerateCode = errors.New("linearcode: degenerate code")

	// ErrBadParameter indicates an invalid parameter to a named family
	// constructor (Repetition n < 1, ParityCheck k < 1, Hamming r < 2).
	ErrBadParameter = errors.New("linearcode: invalid constructor parameter")

	// ErrSearchSpace indicates the exhaustive nearest-codeword search was
	// refused because k exceeds DecodeOptions.MaxBruteForceK.
	ErrSearchSpace = errors.New("linearcode: message space too large for exhaustive decode")
)
