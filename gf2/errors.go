package gf2

import "errors"

// Sentinel errors for gf2 operations. All algorithms return these sentinels
// (optionally wrapped with operation context via %w) and tests match them
// with errors.Is. No function panics on user-triggered error conditions.
var (
	// ErrBadShape indicates a negative dimension or a ragged row set.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates a bit or element index outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Xor of different lengths or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrNilOperand indicates a nil *Vector or *Matrix operand.
	ErrNilOperand = errors.New("gf2: nil operand")
)
