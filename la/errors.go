// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"fmt"

	"cogentcore.org/lamath/base/errors"
)

// Sentinel errors. Every error returned or panicked by this package
// wraps exactly one of them, so callers can test with [errors.Is].
var (
	// ErrIndexOutOfRange indicates a vector or matrix index outside its bounds.
	ErrIndexOutOfRange = errors.New("la: index out of range")

	// ErrDivideByZero indicates a scalar or element-wise division by zero.
	ErrDivideByZero = errors.New("la: divide by zero")

	// ErrSingularMatrix indicates an inverse of a matrix whose determinant is (near) zero.
	ErrSingularMatrix = errors.New("la: singular matrix")

	// ErrDimensionMismatch indicates operands or literals of the wrong size.
	ErrDimensionMismatch = errors.New("la: dimension mismatch")
)

// IndexError reports an out-of-range index. It is the panic value of
// the unchecked accessors ([Vector.At], [Matrix.Col] and friends) and
// the error returned by their checked counterparts.
type IndexError struct {
	// What is indexed: "vector", "column" or "row".
	What string

	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("la: %s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// DimensionError reports operands or literals whose sizes do not fit
// the operation. Element-wise arithmetic on mismatched operands panics
// with a *DimensionError, as the mismatch is a programming error a
// compile-time dimension would have rejected.
type DimensionError struct {
	// Op is the operation that failed.
	Op string

	// Msg describes the mismatch.
	Msg string
}

func (e *DimensionError) Error() string {
	return "la: " + e.Op + ": dimension mismatch: " + e.Msg
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

func dimErrorf(op, format string, args ...any) *DimensionError {
	return &DimensionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

func divErrorf(op, format string, args ...any) error {
	return fmt.Errorf("la: %s: %s: %w", op, fmt.Sprintf(format, args...), ErrDivideByZero)
}

// validDim reports whether n is a supported vector length or matrix dimension.
func validDim(n int) bool {
	return n >= 1 && n <= MaxDim
}

func mustValidDim(op string, n int) {
	if !validDim(n) {
		panic(dimErrorf(op, "size %d not in [1,%d]", n, MaxDim))
	}
}
