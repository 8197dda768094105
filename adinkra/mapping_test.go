package adinkra_test

import (
	"testing"

	"github.com/katalvlaran/gatescode/adinkra"
	"github.com/katalvlaran/gatescode/gf2"
	"github.com/katalvlaran/gatescode/linearcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToLinearCode_Simple pins the 2×2×2 all-pairs derivation exactly:
// color 0 keeps the (0,0) and (1,1) slots undashed, color 1 the cross
// pairs, so the stacked rows are already independent.
func TestToLinearCode_Simple(t *testing.T) {
	g, err := adinkra.NewSimple(2, 2, 2)
	require.NoError(t, err)

	code, err := g.ToLinearCode()
	require.NoError(t, err)

	assert.Equal(t, 4, code.N())
	assert.Equal(t, 2, code.K())
	assert.Equal(t, 2, code.MinimumDistance())

	want, err := gf2.MatrixFromRows([][]uint8{
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	})
	require.NoError(t, err)
	assert.True(t, code.Generator().Equal(want), "generator:\n%s", code.Generator())
}

// TestToLinearCode_Hypercube3 derives the code of the 3-cube Adinkra:
// 4 bosonic × 4 fermionic nodes give length 16, and exactly one dashed
// and one undashed pair survive per color, giving rank 3.
func TestToLinearCode_Hypercube3(t *testing.T) {
	g, err := adinkra.NewHypercube(3)
	require.NoError(t, err)

	code, err := g.ToLinearCode()
	require.NoError(t, err)

	assert.Equal(t, 16, code.N())
	assert.Equal(t, 3, code.K())
	assert.Equal(t, 2, code.MinimumDistance())

	// Orthogonality of the derived pair.
	ht, err := gf2.Transpose(code.ParityCheckMatrix())
	require.NoError(t, err)
	prod, err := gf2.Mul(code.Generator(), ht)
	require.NoError(t, err)
	assert.True(t, prod.IsZero())
}

// TestToLinearCode_Deterministic: two derivations from the same graph
// agree matrix-for-matrix.
func TestToLinearCode_Deterministic(t *testing.T) {
	g, err := adinkra.NewHypercube(3)
	require.NoError(t, err)

	first, err := g.ToLinearCode()
	require.NoError(t, err)
	second, err := g.ToLinearCode()
	require.NoError(t, err)

	assert.True(t, first.Generator().Equal(second.Generator()), "G must be reproducible")
	assert.True(t, first.ParityCheckMatrix().Equal(second.ParityCheckMatrix()), "H must be reproducible")
}

// TestToLinearCode_DashingMatters: flipping one edge's dashing changes
// the derived generator even though adjacency is unchanged.
func TestToLinearCode_DashingMatters(t *testing.T) {
	build := func(dashed bool) *linearcode.Code {
		g, err := adinkra.NewGraph(1)
		require.NoError(t, err)
		b, err := g.AddNode(adinkra.Bosonic, "phi_0")
		require.NoError(t, err)
		f0, err := g.AddNode(adinkra.Fermionic, "psi_0")
		require.NoError(t, err)
		f1, err := g.AddNode(adinkra.Fermionic, "psi_1")
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(b, f0, adinkra.Red, false))
		require.NoError(t, g.AddEdge(b, f1, adinkra.Red, dashed))
		code, err := g.ToLinearCode()
		require.NoError(t, err)

		return code
	}

	plain := build(false)
	flipped := build(true)
	assert.Equal(t, "11", plain.Generator().String())
	assert.Equal(t, "10", flipped.Generator().String())
}

func TestToLinearCode_Errors(t *testing.T) {
	t.Run("empty fermionic partition", func(t *testing.T) {
		g, err := adinkra.NewGraph(1)
		require.NoError(t, err)
		_, err = g.AddNode(adinkra.Bosonic, "phi_0")
		require.NoError(t, err)

		_, err = g.ToLinearCode()
		assert.ErrorIs(t, err, adinkra.ErrEmptyPartition)
	})

	t.Run("all edges dashed", func(t *testing.T) {
		g, err := adinkra.NewGraph(1)
		require.NoError(t, err)
		b, err := g.AddNode(adinkra.Bosonic, "phi_0")
		require.NoError(t, err)
		f, err := g.AddNode(adinkra.Fermionic, "psi_0")
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(b, f, adinkra.Red, true))

		_, err = g.ToLinearCode()
		assert.ErrorIs(t, err, linearcode.ErrDegenerateCode)
	})

	t.Run("no edges at all", func(t *testing.T) {
		g, err := adinkra.NewGraph(1)
		require.NoError(t, err)
		_, err = g.AddNode(adinkra.Bosonic, "phi_0")
		require.NoError(t, err)
		_, err = g.AddNode(adinkra.Fermionic, "psi_0")
		require.NoError(t, err)

		_, err = g.ToLinearCode()
		assert.ErrorIs(t, err, linearcode.ErrDegenerateCode)
	})
}
