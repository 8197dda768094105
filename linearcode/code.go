package linearcode

import (
	"fmt"

	"github.com/katalvlaran/gatescode/gf2"
)

// Operation name constants for unified error wrapping.
const (
	opNew           = "New"
	opFromGenerator = "FromGenerator"
	opEncode        = "Encode"
	opSyndrome      = "Syndrome"
	opDecode        = "Decode"
)

// New constructs a Code from an explicit generator/parity-check pair.
//
// Validation (fail-fast, in order): G must be k×n with 1 ≤ k ≤ n and H
// must be (n−k)×n (ErrShapeMismatch); both must have full row rank
// (ErrRankDeficient); and every row of G must be orthogonal to every row
// of H, i.e. G·Hᵀ = 0 (ErrNotOrthogonal).
func New(g, h *gf2.Matrix) (*Code, error) {
	if g == nil || h == nil {
		return nil, fmt.Errorf("%s: %w", opNew, gf2.ErrNilOperand)
	}
	k, n := g.Rows(), g.Cols()
	if k < 1 || n < 1 || k > n {
		return nil, fmt.Errorf("%s: generator is %dx%d: %w", opNew, k, n, ErrShapeMismatch)
	}
	if h.Cols() != n || h.Rows() != n-k {
		return nil, fmt.Errorf("%s: parity check is %dx%d, want %dx%d: %w",
			opNew, h.Rows(), h.Cols(), n-k, n, ErrShapeMismatch)
	}

	if r, err := gf2.Rank(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	} else if r != k {
		return nil, fmt.Errorf("%s: rank(G)=%d, want %d: %w", opNew, r, k, ErrRankDeficient)
	}
	if r, err := gf2.Rank(h); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	} else if r != n-k {
		return nil, fmt.Errorf("%s: rank(H)=%d, want %d: %w", opNew, r, n-k, ErrRankDeficient)
	}

	ht, err := gf2.Transpose(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	prod, err := gf2.Mul(g, ht)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if !prod.IsZero() {
		return nil, fmt.Errorf("%s: G·Hᵀ != 0: %w", opNew, ErrNotOrthogonal)
	}

	return &Code{
		n:      n,
		k:      k,
		g:      g.Clone(),
		h:      h.Clone(),
		ht:     ht,
		msgPos: unitColumns(g),
		d:      distanceUnknown,
	}, nil
}

// FromGenerator constructs a Code from a generator candidate alone.
// The candidate is row-reduced over GF(2); the surviving rows (in reduced
// row-echelon form, hence systematic) become G with k = rank, and H is a
// null-space basis of G's row space. Returns ErrDegenerateCode when the
// rank collapses to zero.
func FromGenerator(g *gf2.Matrix) (*Code, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opFromGenerator, gf2.ErrNilOperand)
	}
	reduced, rank, err := gf2.RowReduce(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGenerator, err)
	}
	if rank == 0 {
		return nil, fmt.Errorf("%s: generator rank is zero: %w", opFromGenerator, ErrDegenerateCode)
	}
	h, err := gf2.NullSpace(reduced)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGenerator, err)
	}
	code, err := New(reduced, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGenerator, err)
	}

	return code, nil
}

// unitColumns maps each generator row to a column it solely owns (a unit
// column e_i), preferring the leftmost unused one. Returns nil when some
// row owns no unit column, i.e. the generator is not systematic.
func unitColumns(g *gf2.Matrix) []int {
	k, n := g.Rows(), g.Cols()
	pos := make([]int, k)
	for i := range pos {
		pos[i] = -1
	}
	for j := 0; j < n; j++ {
		owner := -1
		for i := 0; i < k; i++ {
			b, _ := g.At(i, j)
			if b == 0 {
				continue
			}
			if owner >= 0 {
				owner = -1 // second 1 in this column, not a unit column
				break
			}
			owner = i
		}
		if owner >= 0 && pos[owner] < 0 {
			pos[owner] = j
		}
	}
	for _, p := range pos {
		if p < 0 {
			return nil
		}
	}

	return pos
}

// N returns the block (codeword) length n.
func (c *Code) N() int { return c.n }

// K returns the message length (code dimension) k.
func (c *Code) K() int { return c.k }

// Generator returns a copy of the k×n generator matrix G.
func (c *Code) Generator() *gf2.Matrix { return c.g.Clone() }

// ParityCheckMatrix returns a copy of the (n−k)×n parity-check matrix H.
func (c *Code) ParityCheckMatrix() *gf2.Matrix { return c.h.Clone() }

// Rate returns the code rate k/n.
func (c *Code) Rate() float64 { return float64(c.k) / float64(c.n) }

// Encode maps a k-bit message to its n-bit codeword m·G.
// Returns ErrVectorLength unless msg.Len() == k.
func (c *Code) Encode(msg *gf2.Vector) (*gf2.Vector, error) {
	if msg == nil {
		return nil, fmt.Errorf("%s: %w", opEncode, gf2.ErrNilOperand)
	}
	if msg.Len() != c.k {
		return nil, fmt.Errorf("%s: message len %d, want k=%d: %w",
			opEncode, msg.Len(), c.k, ErrVectorLength)
	}
	cw, err := gf2.VecMat(msg, c.g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEncode, err)
	}

	return cw, nil
}

// Syndrome returns word·Hᵀ, a vector of length n−k; it is zero exactly
// when word is a valid codeword.
// Returns ErrVectorLength unless word.Len() == n.
func (c *Code) Syndrome(word *gf2.Vector) (*gf2.Vector, error) {
	if word == nil {
		return nil, fmt.Errorf("%s: %w", opSyndrome, gf2.ErrNilOperand)
	}
	if word.Len() != c.n {
		return nil, fmt.Errorf("%s: word len %d, want n=%d: %w",
			opSyndrome, word.Len(), c.n, ErrVectorLength)
	}
	syn, err := gf2.VecMat(word, c.ht)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSyndrome, err)
	}

	return syn, nil
}

// IsCodeword reports whether word has a zero syndrome.
// Returns ErrVectorLength unless word.Len() == n.
func (c *Code) IsCodeword(word *gf2.Vector) (bool, error) {
	syn, err := c.Syndrome(word)
	if err != nil {
		return false, err
	}

	return syn.IsZero(), nil
}

// Decode recovers the k-bit message nearest to the received n-bit word,
// using DefaultDecodeOptions. See DecodeWith.
func (c *Code) Decode(word *gf2.Vector) (*gf2.Vector, error) {
	return c.DecodeWith(word, DefaultDecodeOptions())
}

// DecodeWith recovers the k-bit message nearest to the received word.
//
// A zero-syndrome word on a systematic code short-circuits to direct
// extraction of the message bits from the generator's unit columns.
// Otherwise every one of the 2^k messages is encoded and compared; the
// codeword at minimum Hamming distance wins, ties resolving to the lowest
// message index. The search order is ascending message index (message bit
// i = index bit i), so the result is deterministic and reproducible.
//
// Returns ErrDegenerateCode on an n = 0 or k = 0 code, ErrVectorLength on
// a wrong-length word, and ErrSearchSpace when the exhaustive path is
// needed but k exceeds opts.MaxBruteForceK.
func (c *Code) DecodeWith(word *gf2.Vector, opts DecodeOptions) (*gf2.Vector, error) {
	if c.n == 0 || c.k == 0 {
		return nil, fmt.Errorf("%s: n=%d k=%d: %w", opDecode, c.n, c.k, ErrDegenerateCode)
	}
	syn, err := c.Syndrome(word)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}
	if syn.IsZero() && c.msgPos != nil {
		return c.extractMessage(word)
	}
	if c.k > opts.MaxBruteForceK {
		return nil, fmt.Errorf("%s: k=%d exceeds brute-force cap %d: %w",
			opDecode, c.k, opts.MaxBruteForceK, ErrSearchSpace)
	}

	var best *gf2.Vector
	bestDist := c.n + 1
	for idx := 0; idx < 1<<uint(c.k); idx++ {
		msg := messageVector(c.k, idx)
		cw, encErr := gf2.VecMat(msg, c.g)
		if encErr != nil {
			return nil, fmt.Errorf("%s: %w", opDecode, encErr)
		}
		dist, distErr := gf2.HammingDistance(cw, word)
		if distErr != nil {
			return nil, fmt.Errorf("%s: %w", opDecode, distErr)
		}
		if dist < bestDist {
			bestDist = dist
			best = msg
		}
	}

	return best, nil
}

// extractMessage reads the message bits of a clean codeword straight out of
// the generator's unit columns.
func (c *Code) extractMessage(word *gf2.Vector) (*gf2.Vector, error) {
	msg, err := gf2.NewVector(c.k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}
	for i, j := range c.msgPos {
		b, bitErr := word.Bit(j)
		if bitErr != nil {
			return nil, fmt.Errorf("%s: %w", opDecode, bitErr)
		}
		if setErr := msg.SetBit(i, b); setErr != nil {
			return nil, fmt.Errorf("%s: %w", opDecode, setErr)
		}
	}

	return msg, nil
}

// MinimumDistance returns the minimum Hamming weight over all nonzero
// codewords, enumerating all 2^k messages on first call and caching the
// result. By convention a k = 0 code has distance 0. Exhaustive; intended
// for small k (see package docs).
func (c *Code) MinimumDistance() int {
	if c.d != distanceUnknown {
		return c.d
	}
	if c.k == 0 {
		c.d = 0
		return c.d
	}
	best := c.n
	for idx := 1; idx < 1<<uint(c.k); idx++ {
		cw, err := gf2.VecMat(messageVector(c.k, idx), c.g)
		if err != nil {
			continue // unreachable: dimensions fixed at construction
		}
		if w := cw.Weight(); w < best {
			best = w
		}
	}
	c.d = best

	return c.d
}

// CorrectableErrors returns ⌊(d−1)/2⌋, the guaranteed single-codeword
// error-correction capability.
func (c *Code) CorrectableErrors() int {
	d := c.MinimumDistance()
	if d == 0 {
		return 0
	}

	return (d - 1) / 2
}

// Codewords returns all 2^k codewords in ascending message-index order.
// Exhaustive; intended for small k.
func (c *Code) Codewords() []*gf2.Vector {
	out := make([]*gf2.Vector, 0, 1<<uint(c.k))
	for idx := 0; idx < 1<<uint(c.k); idx++ {
		cw, err := gf2.VecMat(messageVector(c.k, idx), c.g)
		if err != nil {
			continue // unreachable: dimensions fixed at construction
		}
		out = append(out, cw)
	}

	return out
}

// String renders the code parameters as "Code(n,k,d)".
func (c *Code) String() string {
	return fmt.Sprintf("Code(%d,%d,%d)", c.n, c.k, c.MinimumDistance())
}

// messageVector builds the k-bit message whose bit i equals bit i of idx.
func messageVector(k, idx int) *gf2.Vector {
	bs := make([]uint8, k)
	for i := 0; i < k; i++ {
		bs[i] = uint8(idx >> uint(i) & 1)
	}

	return gf2.VectorOf(bs...)
}
