// SPDX-License-Identifier: MIT
// Package matrix: operation tags and the shared error wrapper.
//
// Purpose:
//   - Define operation tags used for uniform error reporting.
//   - Centralize matrixErrorf so every facade exposes "Op: sentinel" errors.
//
// Notes:
//   - Kernels live in kernels.go; facades in real.go / complex.go / vector.go.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewGrid        = "NewGrid"
	opNewReal        = "NewReal"
	opNewComplex     = "NewComplex"
	opSet            = "Set"
	opAt             = "At"
	opClear          = "Clear"
	opRow            = "Row"
	opColumn         = "Column"
	opAdd            = "Add"
	opSub            = "Sub"
	opMul            = "Mul"
	opDiv            = "Div"
	opScalar         = "Scalar"
	opPow            = "Pow"
	opDeterminant    = "Determinant"
	opSubDeterminant = "SubDeterminant"
	opInverse        = "Inverse"
	opMinors         = "Minors"
	opCofactors      = "Cofactors"
	opTrace          = "Trace"
	opHadamard       = "Hadamard"
	opVector         = "Vector"
	opCross          = "Cross"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Returns:
//   - error: formats as "<tag>: <underlying>" and still matches errors.Is/As.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
