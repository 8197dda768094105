package linearcode

import (
	"fmt"

	"github.com/katalvlaran/gatescode/gf2"
)

// File-local constants for method tags and minima (no magic numbers).
const (
	methodRepetition  = "Repetition"
	methodParityCheck = "ParityCheck"
	methodHamming     = "Hamming"

	minRepetitionLength = 1
	minParityMessage    = 1
	minHammingParity    = 2
)

// Repetition returns the (n, 1, n) repetition code: every message bit is
// repeated n times, G = [1 1 … 1]. The parity-check rows pin each later
// position to the first one (x₀ + xᵢ = 0).
// Returns ErrBadParameter for n < 1.
func Repetition(n int) (*Code, error) {
	if n < minRepetitionLength {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
			methodRepetition, n, minRepetitionLength, ErrBadParameter)
	}

	ones := make([]uint8, n)
	for i := range ones {
		ones[i] = 1
	}
	g, err := gf2.MatrixFromRows([][]uint8{ones})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRepetition, err)
	}

	h, err := gf2.NewMatrix(n-1, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRepetition, err)
	}
	for i := 1; i < n; i++ {
		_ = h.Set(i-1, 0, 1)
		_ = h.Set(i-1, i, 1)
	}

	code, err := New(g, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRepetition, err)
	}

	return code, nil
}

// ParityCheck returns the (k+1, k, 2) single parity check code:
// G = [I_k | 1] appends one overall parity bit, H = [1 1 … 1].
// Returns ErrBadParameter for k < 1.
func ParityCheck(k int) (*Code, error) {
	if k < minParityMessage {
		return nil, fmt.Errorf("%s: k=%d (must be ≥ %d): %w",
			methodParityCheck, k, minParityMessage, ErrBadParameter)
	}

	g, err := gf2.NewMatrix(k, k+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodParityCheck, err)
	}
	for i := 0; i < k; i++ {
		_ = g.Set(i, i, 1)
		_ = g.Set(i, k, 1)
	}

	h, err := gf2.NewMatrix(1, k+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodParityCheck, err)
	}
	for j := 0; j <= k; j++ {
		_ = h.Set(0, j, 1)
	}

	code, err := New(g, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodParityCheck, err)
	}

	return code, nil
}

// Hamming returns the (2^r−1, 2^r−1−r, 3) Hamming code for r ≥ 2.
//
// The canonical parity-check matrix has column j (0-based) equal to the
// r-bit binary representation of j+1, bit i in row i — binary counting
// order, so columns run through every nonzero r-bit vector exactly once.
// Columns at positions 2^i−1 are unit vectors; they carry the parity bits,
// and the remaining positions carry the message bits, which yields a
// systematic generator without any column permutation.
// Returns ErrBadParameter for r < 2.
func Hamming(r int) (*Code, error) {
	if r < minHammingParity {
		return nil, fmt.Errorf("%s: r=%d (must be ≥ %d): %w",
			methodHamming, r, minHammingParity, ErrBadParameter)
	}

	n := 1<<uint(r) - 1
	k := n - r

	h, err := gf2.NewMatrix(r, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHamming, err)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < r; i++ {
			if (j+1)>>uint(i)&1 == 1 {
				_ = h.Set(i, j, 1)
			}
		}
	}

	// Parity positions are the unit columns 2^i−1; message positions are
	// the rest, taken in ascending order.
	parityPos := make([]int, r)
	for i := 0; i < r; i++ {
		parityPos[i] = 1<<uint(i) - 1
	}
	isParity := make([]bool, n)
	for _, p := range parityPos {
		isParity[p] = true
	}
	msgPos := make([]int, 0, k)
	for j := 0; j < n; j++ {
		if !isParity[j] {
			msgPos = append(msgPos, j)
		}
	}

	g, err := gf2.NewMatrix(k, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHamming, err)
	}
	for t, p := range msgPos {
		_ = g.Set(t, p, 1)
		// Parity bit i of row t mirrors H's entry at the message column,
		// which makes each generator row orthogonal to each H row.
		for i, q := range parityPos {
			b, _ := h.At(i, p)
			_ = g.Set(t, q, b)
		}
	}

	code, err := New(g, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHamming, err)
	}

	return code, nil
}
