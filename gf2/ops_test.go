package gf2_test

import (
	"testing"

	"github.com/katalvlaran/gatescode/gf2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd verifies elementwise XOR and shape validation.
func TestAdd(t *testing.T) {
	a, _ := gf2.MatrixFromRows([][]uint8{{1, 0}, {1, 1}})
	b, _ := gf2.MatrixFromRows([][]uint8{{1, 1}, {0, 1}})

	sum, err := gf2.Add(a, b)
	require.NoError(t, err)
	want, _ := gf2.MatrixFromRows([][]uint8{{0, 1}, {1, 0}})
	assert.True(t, sum.Equal(want), "Add = %s; want %s", sum, want)

	self, err := gf2.Add(a, a)
	require.NoError(t, err)
	assert.True(t, self.IsZero(), "a + a = 0 over GF(2)")

	c, _ := gf2.NewMatrix(1, 2)
	_, err = gf2.Add(a, c)
	assert.ErrorIs(t, err, gf2.ErrDimensionMismatch)
	_, err = gf2.Add(nil, a)
	assert.ErrorIs(t, err, gf2.ErrNilOperand)
}

// TestMul verifies the XOR-accumulated product against a hand computation.
func TestMul(t *testing.T) {
	a, _ := gf2.MatrixFromRows([][]uint8{{1, 1}, {0, 1}})
	b, _ := gf2.MatrixFromRows([][]uint8{{1, 0}, {1, 1}})

	prod, err := gf2.Mul(a, b)
	require.NoError(t, err)
	want, _ := gf2.MatrixFromRows([][]uint8{{0, 1}, {1, 1}})
	assert.True(t, prod.Equal(want), "Mul = %s; want %s", prod, want)

	// Identity is neutral.
	id, _ := gf2.Identity(2)
	left, err := gf2.Mul(id, a)
	require.NoError(t, err)
	assert.True(t, left.Equal(a))

	_, err = gf2.Mul(a, id)
	require.NoError(t, err)

	c, _ := gf2.NewMatrix(3, 2)
	_, err = gf2.Mul(a, c)
	assert.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

// TestTranspose verifies mirroring and double-transpose identity.
func TestTranspose(t *testing.T) {
	m, _ := gf2.MatrixFromRows([][]uint8{{1, 0, 1}, {0, 1, 1}})

	mt, err := gf2.Transpose(m)
	require.NoError(t, err)
	want, _ := gf2.MatrixFromRows([][]uint8{{1, 0}, {0, 1}, {1, 1}})
	assert.True(t, mt.Equal(want), "Transpose = %s; want %s", mt, want)

	back, err := gf2.Transpose(mt)
	require.NoError(t, err)
	assert.True(t, back.Equal(m), "double transpose must restore the input")
}

// TestMatVecVecMat verifies both product orientations.
func TestMatVecVecMat(t *testing.T) {
	m, _ := gf2.MatrixFromRows([][]uint8{{1, 0, 1}, {0, 1, 1}})

	col, err := gf2.MatVec(m, gf2.VectorOf(1, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, "11", col.String())

	row, err := gf2.VecMat(gf2.VectorOf(1, 1), m)
	require.NoError(t, err)
	assert.Equal(t, "110", row.String())

	_, err = gf2.MatVec(m, gf2.VectorOf(1, 1))
	assert.ErrorIs(t, err, gf2.ErrDimensionMismatch)
	_, err = gf2.VecMat(gf2.VectorOf(1, 1, 0), m)
	assert.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

// TestRowReduce checks the reduced echelon form, rank, and input immutability.
func TestRowReduce(t *testing.T) {
	m, _ := gf2.MatrixFromRows([][]uint8{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1}, // = row0 + row1, dependent
	})

	red, rank, err := gf2.RowReduce(m)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	want, _ := gf2.MatrixFromRows([][]uint8{{1, 0, 1}, {0, 1, 1}})
	assert.True(t, red.Equal(want), "RowReduce = %s; want %s", red, want)

	// Input untouched.
	orig, _ := gf2.MatrixFromRows([][]uint8{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}})
	assert.True(t, m.Equal(orig), "RowReduce must not mutate its input")
}

// TestRank covers full-rank, deficient, zero and empty inputs.
func TestRank(t *testing.T) {
	id, _ := gf2.Identity(4)
	r, err := gf2.Rank(id)
	require.NoError(t, err)
	assert.Equal(t, 4, r)

	z, _ := gf2.NewMatrix(3, 3)
	r, err = gf2.Rank(z)
	require.NoError(t, err)
	assert.Equal(t, 0, r)

	empty, _ := gf2.NewMatrix(0, 4)
	r, err = gf2.Rank(empty)
	require.NoError(t, err)
	assert.Equal(t, 0, r)
}

// TestNullSpace verifies that the basis annihilates the input and has the
// complementary dimension.
func TestNullSpace(t *testing.T) {
	m, _ := gf2.MatrixFromRows([][]uint8{{1, 0, 1}, {0, 1, 1}})

	ns, err := gf2.NullSpace(m)
	require.NoError(t, err)
	assert.Equal(t, 1, ns.Rows(), "3 cols − rank 2 = 1 basis vector")
	assert.Equal(t, 3, ns.Cols())

	row, err := ns.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "111", row.String())

	prod, err := gf2.MatVec(m, row)
	require.NoError(t, err)
	assert.True(t, prod.IsZero(), "null-space vectors must annihilate m")
}

// TestNullSpace_Extremes covers full column rank and the 0-row matrix.
func TestNullSpace_Extremes(t *testing.T) {
	id, _ := gf2.Identity(3)
	ns, err := gf2.NullSpace(id)
	require.NoError(t, err)
	assert.Equal(t, 0, ns.Rows(), "full column rank has a trivial null space")
	assert.Equal(t, 3, ns.Cols())

	empty, _ := gf2.NewMatrix(0, 3)
	ns, err = gf2.NullSpace(empty)
	require.NoError(t, err)
	assert.Equal(t, 3, ns.Rows(), "no constraints: the whole space")
	want, _ := gf2.Identity(3)
	assert.True(t, ns.Equal(want))
}
