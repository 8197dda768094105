package gf2_test

import (
	"fmt"

	"github.com/katalvlaran/gatescode/gf2"
)

// ExampleRowReduce reduces a rank-deficient matrix to reduced row-echelon
// form: the third row is the sum of the first two, so only two survive.
func ExampleRowReduce() {
	m, _ := gf2.MatrixFromRows([][]uint8{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
	})

	reduced, rank, _ := gf2.RowReduce(m)
	fmt.Println("rank:", rank)
	fmt.Println(reduced)
	// Output:
	// rank: 2
	// 101
	// 011
}

// ExampleVecMat multiplies a row vector by a matrix — the orientation used
// for codeword encoding, message · G.
func ExampleVecMat() {
	g, _ := gf2.MatrixFromRows([][]uint8{
		{1, 0, 1, 0},
		{0, 1, 1, 1},
	})

	cw, _ := gf2.VecMat(gf2.VectorOf(1, 1), g)
	fmt.Println(cw)
	// Output:
	// 1101
}

// ExampleNullSpace finds the vectors annihilated by a matrix; they become
// parity-check rows in the coding-theory half of this module.
func ExampleNullSpace() {
	m, _ := gf2.MatrixFromRows([][]uint8{
		{1, 0, 1},
		{0, 1, 1},
	})

	ns, _ := gf2.NullSpace(m)
	fmt.Println(ns)
	// Output:
	// 111
}
