package linearcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/gatescode/gf2"
	"github.com/katalvlaran/gatescode/linearcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFamilies_Parameters checks (n, k, d) for the classic constructions:
// repetition(5) → d=5, hamming(3) → d=3, parity(4) → d=2, and friends.
func TestFamilies_Parameters(t *testing.T) {
	cases := []struct {
		name    string
		mk      func() (*linearcode.Code, error)
		n, k, d int
	}{
		{"Repetition1", func() (*linearcode.Code, error) { return linearcode.Repetition(1) }, 1, 1, 1},
		{"Repetition3", func() (*linearcode.Code, error) { return linearcode.Repetition(3) }, 3, 1, 3},
		{"Repetition5", func() (*linearcode.Code, error) { return linearcode.Repetition(5) }, 5, 1, 5},
		{"ParityCheck1", func() (*linearcode.Code, error) { return linearcode.ParityCheck(1) }, 2, 1, 2},
		{"ParityCheck4", func() (*linearcode.Code, error) { return linearcode.ParityCheck(4) }, 5, 4, 2},
		{"Hamming2", func() (*linearcode.Code, error) { return linearcode.Hamming(2) }, 3, 1, 3},
		{"Hamming3", func() (*linearcode.Code, error) { return linearcode.Hamming(3) }, 7, 4, 3},
		{"Hamming4", func() (*linearcode.Code, error) { return linearcode.Hamming(4) }, 15, 11, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := tc.mk()
			require.NoError(t, err)
			assert.Equal(t, tc.n, code.N(), "n")
			assert.Equal(t, tc.k, code.K(), "k")
			assert.Equal(t, tc.d, code.MinimumDistance(), "d")
		})
	}
}

// TestFamilies_BadParameters rejects out-of-range family parameters.
func TestFamilies_BadParameters(t *testing.T) {
	cases := []struct {
		name string
		mk   func() (*linearcode.Code, error)
	}{
		{"Repetition0", func() (*linearcode.Code, error) { return linearcode.Repetition(0) }},
		{"RepetitionNegative", func() (*linearcode.Code, error) { return linearcode.Repetition(-3) }},
		{"ParityCheck0", func() (*linearcode.Code, error) { return linearcode.ParityCheck(0) }},
		{"Hamming1", func() (*linearcode.Code, error) { return linearcode.Hamming(1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.mk()
			if !errors.Is(err, linearcode.ErrBadParameter) {
				t.Errorf("error = %v; want ErrBadParameter", err)
			}
		})
	}
}

// TestFamilies_Orthogonality re-checks G·Hᵀ = 0 on every family.
func TestFamilies_Orthogonality(t *testing.T) {
	codes := map[string]*linearcode.Code{}
	for _, n := range []int{1, 2, 5} {
		c, err := linearcode.Repetition(n)
		require.NoError(t, err)
		codes[fmt.Sprintf("repetition(%d)", n)] = c
	}
	for _, k := range []int{1, 4} {
		c, err := linearcode.ParityCheck(k)
		require.NoError(t, err)
		codes[fmt.Sprintf("parity(%d)", k)] = c
	}
	for _, r := range []int{2, 3, 4} {
		c, err := linearcode.Hamming(r)
		require.NoError(t, err)
		codes[fmt.Sprintf("hamming(%d)", r)] = c
	}

	for name, code := range codes {
		ht, err := gf2.Transpose(code.ParityCheckMatrix())
		require.NoError(t, err, name)
		prod, err := gf2.Mul(code.Generator(), ht)
		require.NoError(t, err, name)
		assert.True(t, prod.IsZero(), "%s: G·Hᵀ must vanish", name)
	}
}

// TestHamming2_IsTripleRepetition: the r=2 Hamming code and the length-3
// repetition code share the same codebook {000, 111}.
func TestHamming2_IsTripleRepetition(t *testing.T) {
	ham, err := linearcode.Hamming(2)
	require.NoError(t, err)
	rep, err := linearcode.Repetition(3)
	require.NoError(t, err)

	hw := ham.Codewords()
	rw := rep.Codewords()
	require.Len(t, hw, 2)
	require.Len(t, rw, 2)
	for i := range hw {
		assert.True(t, hw[i].Equal(rw[i]), "codeword %d", i)
	}
}

// TestParityCheck_Encode pins the overall parity bit.
func TestParityCheck_Encode(t *testing.T) {
	code, err := linearcode.ParityCheck(4)
	require.NoError(t, err)

	cw, err := code.Encode(gf2.VectorOf(1, 1, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "11011", cw.String(), "three ones demand parity 1")

	cw, err = code.Encode(gf2.VectorOf(1, 1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "11000", cw.String(), "two ones demand parity 0")

	// A single flipped parity bit is detectable: nonzero syndrome.
	bad := gf2.VectorOf(1, 1, 0, 0, 1)
	ok, err := code.IsCodeword(bad)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestRepetition1_EmptySyndrome: the (1,1) code has no parity rows, so
// every word is a codeword and the syndrome is the empty vector.
func TestRepetition1_EmptySyndrome(t *testing.T) {
	code, err := linearcode.Repetition(1)
	require.NoError(t, err)

	syn, err := code.Syndrome(gf2.VectorOf(1))
	require.NoError(t, err)
	assert.Equal(t, 0, syn.Len())
	assert.True(t, syn.IsZero())

	got, err := code.Decode(gf2.VectorOf(1))
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())
}
