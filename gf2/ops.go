package gf2

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opVecMat    = "VecMat"
	opRowReduce = "RowReduce"
	opRank      = "Rank"
	opNullSpace = "NullSpace"
)

// Add returns the elementwise sum a + b over GF(2) as a fresh Matrix.
// Returns ErrDimensionMismatch if the shapes differ.
func Add(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opAdd, ErrNilOperand)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w",
			opAdd, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out := a.Clone()
	for i := range out.row {
		out.row[i].xorInPlace(b.row[i])
	}

	return out, nil
}

// Mul returns the matrix product a · b over GF(2).
// Entry (i,j) is the XOR-accumulated parity Σ a(i,t)·b(t,j).
// Returns ErrDimensionMismatch unless a.Cols() == b.Rows().
//
// The inner loop is word-parallel: for every 1 bit in row i of a, the whole
// corresponding row of b is XOR-folded into the result row.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opMul, ErrNilOperand)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("%s: a is %dx%d, b is %dx%d: %w",
			opMul, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out, err := NewMatrix(a.rows, b.cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	for i := 0; i < a.rows; i++ {
		for t := 0; t < a.cols; t++ {
			if a.row[i].words[t/wordBits]>>(t%wordBits)&1 == 1 {
				out.row[i].xorInPlace(b.row[t])
			}
		}
	}

	return out, nil
}

// Transpose returns a fresh cols × rows Matrix with entries mirrored.
func Transpose(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, ErrNilOperand)
	}
	out, err := NewMatrix(m.cols, m.rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.row[i].words[j/wordBits]>>(j%wordBits)&1 == 1 {
				out.row[j].words[i/wordBits] |= 1 << (i % wordBits)
			}
		}
	}

	return out, nil
}

// MatVec returns m · v with v treated as a column vector; the result has
// length Rows(). Bit i is the parity of row i AND v.
// Returns ErrDimensionMismatch unless v.Len() == m.Cols().
func MatVec(m *Matrix, v *Vector) (*Vector, error) {
	if m == nil || v == nil {
		return nil, fmt.Errorf("%s: %w", opMatVec, ErrNilOperand)
	}
	if v.n != m.cols {
		return nil, fmt.Errorf("%s: vector len %d vs %d cols: %w",
			opMatVec, v.n, m.cols, ErrDimensionMismatch)
	}
	out := &Vector{n: m.rows, words: make([]uint64, wordsFor(m.rows))}
	for i := 0; i < m.rows; i++ {
		parity := 0
		for w := range v.words {
			parity ^= onesParity(m.row[i].words[w] & v.words[w])
		}
		if parity == 1 {
			out.words[i/wordBits] |= 1 << (i % wordBits)
		}
	}

	return out, nil
}

// VecMat returns v · m with v treated as a row vector; the result has
// length Cols(). This is the generator-matrix encoding orientation m·G.
// Returns ErrDimensionMismatch unless v.Len() == m.Rows().
func VecMat(v *Vector, m *Matrix) (*Vector, error) {
	if m == nil || v == nil {
		return nil, fmt.Errorf("%s: %w", opVecMat, ErrNilOperand)
	}
	if v.n != m.rows {
		return nil, fmt.Errorf("%s: vector len %d vs %d rows: %w",
			opVecMat, v.n, m.rows, ErrDimensionMismatch)
	}
	out := &Vector{n: m.cols, words: make([]uint64, wordsFor(m.cols))}
	for i := 0; i < m.rows; i++ {
		if v.words[i/wordBits]>>(i%wordBits)&1 == 1 {
			out.xorInPlace(m.row[i])
		}
	}

	return out, nil
}

// onesParity returns the parity (0 or 1) of the set bits of w.
func onesParity(w uint64) int {
	w ^= w >> 32
	w ^= w >> 16
	w ^= w >> 8
	w ^= w >> 4
	w ^= w >> 2
	w ^= w >> 1

	return int(w & 1)
}

// RowReduce returns the reduced row-echelon form of m over GF(2), with zero
// rows trimmed, together with the rank. The input is not mutated.
//
// Pivot rule (deterministic): scan columns left to right; for each column
// take the first remaining row holding a 1, swap it up, and XOR it into
// every other row with a 1 in that column.
func RowReduce(m *Matrix) (*Matrix, int, error) {
	if m == nil {
		return nil, 0, fmt.Errorf("%s: %w", opRowReduce, ErrNilOperand)
	}
	work := m.Clone()
	pivots := reduceInPlace(work)
	rank := len(pivots)
	work.row = work.row[:rank]
	work.rows = rank

	return work, rank, nil
}

// Rank returns the rank of m over GF(2).
func Rank(m *Matrix) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("%s: %w", opRank, ErrNilOperand)
	}
	work := m.Clone()

	return len(reduceInPlace(work)), nil
}

// NullSpace returns a Matrix whose rows form a basis of
// {x : m · xᵀ = 0}, one row per free column of the reduced form, in
// ascending free-column order. When m has full column rank the result has
// zero rows (and Cols() == m.Cols()).
func NullSpace(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opNullSpace, ErrNilOperand)
	}
	work := m.Clone()
	pivots := reduceInPlace(work)

	isPivot := make([]bool, m.cols)
	for _, p := range pivots {
		isPivot[p] = true
	}

	basis, err := NewMatrix(m.cols-len(pivots), m.cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNullSpace, err)
	}
	bi := 0
	for f := 0; f < m.cols; f++ {
		if isPivot[f] {
			continue
		}
		// Free column f: set x[f] = 1, then x[pivot(r)] = work(r, f)
		// so that every reduced row equation sums to zero.
		row := basis.row[bi]
		row.words[f/wordBits] |= 1 << (f % wordBits)
		for r, p := range pivots {
			if work.row[r].words[f/wordBits]>>(f%wordBits)&1 == 1 {
				row.words[p/wordBits] |= 1 << (p % wordBits)
			}
		}
		bi++
	}

	return basis, nil
}

// reduceInPlace brings work to reduced row-echelon form and returns the
// pivot columns in row order. Zero rows sink below the returned pivots.
func reduceInPlace(work *Matrix) []int {
	pivots := make([]int, 0, minInt(work.rows, work.cols))
	r := 0
	for c := 0; c < work.cols && r < work.rows; c++ {
		// Locate the first row at or below r holding a 1 in column c.
		pivot := -1
		for i := r; i < work.rows; i++ {
			if work.row[i].words[c/wordBits]>>(c%wordBits)&1 == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work.row[r], work.row[pivot] = work.row[pivot], work.row[r]
		// Clear column c in every other row.
		for i := 0; i < work.rows; i++ {
			if i != r && work.row[i].words[c/wordBits]>>(c%wordBits)&1 == 1 {
				work.row[i].xorInPlace(work.row[r])
			}
		}
		pivots = append(pivots, c)
		r++
	}

	return pivots
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
