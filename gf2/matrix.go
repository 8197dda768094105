package gf2

import (
	"fmt"
	"strings"
)

// Matrix is a rows × cols binary matrix stored as a slice of bit-packed row
// Vectors. A 0-row Matrix is valid and represents an empty row set (for
// example an empty null-space basis); its column count is still meaningful.
type Matrix struct {
	rows, cols int
	row        []*Vector
}

// NewMatrix returns an all-zero rows × cols Matrix.
// Returns ErrBadShape if either dimension is negative.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	m := &Matrix{rows: rows, cols: cols, row: make([]*Vector, rows)}
	for i := range m.row {
		m.row[i] = &Vector{n: cols, words: make([]uint64, wordsFor(cols))}
	}

	return m, nil
}

// MatrixFromRows builds a Matrix from 0/1 row slices (values reduced mod 2).
// All rows must have the same length; returns ErrBadShape for a ragged
// input or for an empty outer slice (the column count would be unknown).
func MatrixFromRows(rows [][]uint8) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("MatrixFromRows: no rows: %w", ErrBadShape)
	}
	cols := len(rows[0])
	m := &Matrix{rows: len(rows), cols: cols, row: make([]*Vector, len(rows))}
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("MatrixFromRows: row %d has %d cols, want %d: %w",
				i, len(r), cols, ErrBadShape)
		}
		m.row[i] = VectorOf(r...)
	}

	return m, nil
}

// Identity returns the n × n identity matrix.
// Returns ErrBadShape if n is negative.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.row[i].words[i/wordBits] |= 1 << (i % wordBits)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (i, j).
// Returns ErrOutOfRange for indices outside the matrix.
func (m *Matrix) At(i, j int) (uint8, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("At(%d,%d): shape %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return uint8(m.row[i].words[j/wordBits] >> (j % wordBits) & 1), nil
}

// Set assigns the element at (i, j) to b (reduced modulo 2).
// Returns ErrOutOfRange for indices outside the matrix.
func (m *Matrix) Set(i, j int, b uint8) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Set(%d,%d): shape %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return m.row[i].SetBit(j, b)
}

// Row returns an independent copy of row i.
// Returns ErrOutOfRange if i is outside [0, Rows).
func (m *Matrix) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Row(%d): rows=%d: %w", i, m.rows, ErrOutOfRange)
	}

	return m.row[i].Clone(), nil
}

// SetRow overwrites row i with a copy of v.
// Returns ErrOutOfRange for a bad index, ErrDimensionMismatch if
// v.Len() != Cols().
func (m *Matrix) SetRow(i int, v *Vector) error {
	if v == nil {
		return fmt.Errorf("SetRow(%d): %w", i, ErrNilOperand)
	}
	if i < 0 || i >= m.rows {
		return fmt.Errorf("SetRow(%d): rows=%d: %w", i, m.rows, ErrOutOfRange)
	}
	if v.n != m.cols {
		return fmt.Errorf("SetRow(%d): len %d vs cols %d: %w", i, v.n, m.cols, ErrDimensionMismatch)
	}
	m.row[i] = v.Clone()

	return nil
}

// IsZero reports whether every element is 0.
func (m *Matrix) IsZero() bool {
	for _, r := range m.row {
		if !r.IsZero() {
			return false
		}
	}

	return true
}

// Equal reports whether m and o have identical shape and identical bits.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.row {
		if !m.row[i].Equal(o.row[i]) {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, row: make([]*Vector, m.rows)}
	for i := range m.row {
		out.row[i] = m.row[i].Clone()
	}

	return out
}

// String renders the matrix one bit-string row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i, r := range m.row {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.String())
	}

	return sb.String()
}
