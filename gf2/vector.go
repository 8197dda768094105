package gf2

import (
	"fmt"
	"math/bits"
	"strings"
)

// wordBits is the number of bits stored per backing word.
const wordBits = 64

// Vector is a fixed-length binary vector with bits packed into uint64 words.
// Bit i of the vector lives at word i/64, position i%64. Unused high bits of
// the last word are kept zero; every operation preserves that invariant.
//
// The zero-length Vector is valid and represents the empty vector.
type Vector struct {
	n     int
	words []uint64
}

// NewVector returns an all-zero Vector of length n.
// Returns ErrBadShape if n is negative.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector: n=%d: %w", n, ErrBadShape)
	}

	return &Vector{n: n, words: make([]uint64, wordsFor(n))}, nil
}

// VectorOf builds a Vector from the given bits in order.
// Values are reduced modulo 2, so any even value reads as 0 and any odd as 1.
func VectorOf(bs ...uint8) *Vector {
	v := &Vector{n: len(bs), words: make([]uint64, wordsFor(len(bs)))}
	for i, b := range bs {
		if b&1 == 1 {
			v.words[i/wordBits] |= 1 << (i % wordBits)
		}
	}

	return v
}

// wordsFor returns the number of uint64 words needed to hold n bits.
func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Len returns the number of bits in the vector.
func (v *Vector) Len() int { return v.n }

// Bit returns bit i (0 or 1).
// Returns ErrOutOfRange if i is outside [0, Len).
func (v *Vector) Bit(i int) (uint8, error) {
	if i < 0 || i >= v.n {
		return 0, fmt.Errorf("Bit(%d): len=%d: %w", i, v.n, ErrOutOfRange)
	}

	return uint8(v.words[i/wordBits] >> (i % wordBits) & 1), nil
}

// SetBit assigns bit i to b (reduced modulo 2).
// Returns ErrOutOfRange if i is outside [0, Len).
func (v *Vector) SetBit(i int, b uint8) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("SetBit(%d): len=%d: %w", i, v.n, ErrOutOfRange)
	}
	mask := uint64(1) << (i % wordBits)
	if b&1 == 1 {
		v.words[i/wordBits] |= mask
	} else {
		v.words[i/wordBits] &^= mask
	}

	return nil
}

// Xor returns the elementwise sum v + o over GF(2) as a fresh Vector.
// Returns ErrDimensionMismatch if the lengths differ.
func (v *Vector) Xor(o *Vector) (*Vector, error) {
	if o == nil {
		return nil, fmt.Errorf("Xor: %w", ErrNilOperand)
	}
	if v.n != o.n {
		return nil, fmt.Errorf("Xor: len %d vs %d: %w", v.n, o.n, ErrDimensionMismatch)
	}
	out := v.Clone()
	for i := range out.words {
		out.words[i] ^= o.words[i]
	}

	return out, nil
}

// And returns the elementwise product v · o over GF(2) as a fresh Vector.
// Returns ErrDimensionMismatch if the lengths differ.
func (v *Vector) And(o *Vector) (*Vector, error) {
	if o == nil {
		return nil, fmt.Errorf("And: %w", ErrNilOperand)
	}
	if v.n != o.n {
		return nil, fmt.Errorf("And: len %d vs %d: %w", v.n, o.n, ErrDimensionMismatch)
	}
	out := v.Clone()
	for i := range out.words {
		out.words[i] &= o.words[i]
	}

	return out, nil
}

// Weight returns the Hamming weight (number of 1 bits).
func (v *Vector) Weight() int {
	w := 0
	for _, word := range v.words {
		w += bits.OnesCount64(word)
	}

	return w
}

// IsZero reports whether every bit is 0. The empty vector is zero.
func (v *Vector) IsZero() bool {
	for _, word := range v.words {
		if word != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether v and o have the same length and the same bits.
func (v *Vector) Equal(o *Vector) bool {
	if o == nil || v.n != o.n {
		return false
	}
	for i := range v.words {
		if v.words[i] != o.words[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy of v.
func (v *Vector) Clone() *Vector {
	out := &Vector{n: v.n, words: make([]uint64, len(v.words))}
	copy(out.words, v.words)

	return out
}

// Bits unpacks the vector into a fresh []uint8 of 0/1 values.
func (v *Vector) Bits() []uint8 {
	out := make([]uint8, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = uint8(v.words[i/wordBits] >> (i % wordBits) & 1)
	}

	return out
}

// String renders the vector as a bit string, e.g. "10110". Empty for Len 0.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.words[i/wordBits]>>(i%wordBits)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// xorInPlace folds o into v without allocating. Lengths must already match.
func (v *Vector) xorInPlace(o *Vector) {
	for i := range v.words {
		v.words[i] ^= o.words[i]
	}
}

// HammingDistance returns the number of positions where a and b differ.
// Returns ErrDimensionMismatch if the lengths differ.
func HammingDistance(a, b *Vector) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("HammingDistance: %w", ErrNilOperand)
	}
	if a.n != b.n {
		return 0, fmt.Errorf("HammingDistance: len %d vs %d: %w", a.n, b.n, ErrDimensionMismatch)
	}
	d := 0
	for i := range a.words {
		d += bits.OnesCount64(a.words[i] ^ b.words[i])
	}

	return d, nil
}
