// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"fmt"
	"math"

	"cogentcore.org/lamath/base/errors"
)

// The determinant and inverse use recursive Laplace (cofactor)
// expansion, which is O(N!) in the dimension. That is fine for the
// 2x2 to 4x4 matrices of a renderer, which is all [MaxDim] allows;
// raising MaxDim should come with an LU decomposition instead.

func (m Matrix[T]) mustSquare(op string) {
	if !m.IsSquare() {
		panic(dimErrorf(op, "%dx%d matrix is not square", m.rows, m.cols))
	}
}

// Determinant returns the determinant of the square matrix m.
// It panics with a [*DimensionError] if m is not square.
func Determinant[T Scalar](m Matrix[T]) T {
	m.mustSquare("Determinant")
	return determinant(&m)
}

// Determinant is the method form of [Determinant].
func (m Matrix[T]) Determinant() T {
	return Determinant(m)
}

func determinant[T Scalar](m *Matrix[T]) T {
	switch m.rows {
	case 1:
		return m.e[0]
	case 2:
		return m.at(0, 0)*m.at(1, 1) - m.at(1, 0)*m.at(0, 1)
	}
	// expand along row 0; the sign alternates with the column
	var det T
	for k := range m.cols {
		a := m.at(k, 0)
		if a == 0 {
			continue
		}
		sub := subMatrix(m, k, 0)
		term := a * determinant(&sub)
		if k%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}
	return det
}

// subMatrix deletes column i and row j. Indexes must be in range.
func subMatrix[T Scalar](m *Matrix[T], i, j int) Matrix[T] {
	s := Matrix[T]{rows: m.rows - 1, cols: m.cols - 1}
	sc := 0
	for c := range m.cols {
		if c == i {
			continue
		}
		sr := 0
		for r := range m.rows {
			if r == j {
				continue
			}
			s.set(sc, sr, m.at(c, r))
			sr++
		}
		sc++
	}
	return s
}

// SubMatrix returns the (rows-1) x (cols-1) matrix left after deleting
// column i and row j of m. It returns an error wrapping
// [ErrIndexOutOfRange] if i or j is out of range, and one wrapping
// [ErrDimensionMismatch] if m has a single row or column.
func SubMatrix[T Scalar](m Matrix[T], i, j int) (Matrix[T], error) {
	if i < 0 || i >= m.cols {
		return Matrix[T]{}, &IndexError{What: "column", Index: i, Len: m.cols}
	}
	if j < 0 || j >= m.rows {
		return Matrix[T]{}, &IndexError{What: "row", Index: j, Len: m.rows}
	}
	if m.rows < 2 || m.cols < 2 {
		return Matrix[T]{}, dimErrorf("SubMatrix", "%dx%d matrix has no submatrix", m.rows, m.cols)
	}
	return subMatrix(&m, i, j), nil
}

// Minors returns the matrix of minors of the square matrix m: element
// [i][j] is the determinant of SubMatrix(m, i, j). The single minor of
// a 1x1 matrix is taken to be 1, so that [Inverse] works for it too.
func Minors[T Scalar](m Matrix[T]) Matrix[T] {
	m.mustSquare("Minors")
	res := Matrix[T]{rows: m.rows, cols: m.cols}
	if m.rows == 1 {
		res.e[0] = 1
		return res
	}
	for i := range m.cols {
		for j := range m.rows {
			sub := subMatrix(&m, i, j)
			res.set(i, j, determinant(&sub))
		}
	}
	return res
}

// Cofactors returns the cofactor matrix of m: the minors with sign
// (-1)^(i+j).
func Cofactors[T Scalar](m Matrix[T]) Matrix[T] {
	res := Minors(m)
	var zero T
	for i := range res.cols {
		for j := range res.rows {
			if (i+j)%2 == 1 {
				// zero - x keeps a zero minor +0
				res.set(i, j, zero-res.at(i, j))
			}
		}
	}
	return res
}

// Adjugate returns the transpose of the cofactor matrix of m.
func Adjugate[T Scalar](m Matrix[T]) Matrix[T] {
	return Transpose(Cofactors(m))
}

// Inverse returns the inverse of the square matrix m, computed as
// Adjugate(m) / Determinant(m). It returns an error wrapping
// [ErrSingularMatrix] if m is singular relative to its scale (see
// [SingularEpsilon]), and panics with a [*DimensionError] if m is not
// square.
func Inverse[T Float](m Matrix[T]) (Matrix[T], error) {
	det := Determinant(m)
	if isSingular(&m, det) {
		return Matrix[T]{}, fmt.Errorf("la: Inverse: %dx%d matrix has determinant %v: %w", m.rows, m.cols, det, ErrSingularMatrix)
	}
	return Adjugate(m).MulScalar(1 / det), nil
}

// MustInverse is [Inverse] that panics on a singular matrix.
func MustInverse[T Float](m Matrix[T]) Matrix[T] {
	return errors.Must1(Inverse(m))
}

// isSingular reports whether det, the determinant of m, is negligible
// next to the product of the column lengths of m.
func isSingular[T Float](m *Matrix[T], det T) bool {
	eps := SingularEpsilon
	if _, ok := any(det).(float32); ok {
		eps = SingularEpsilon32
	}
	bound := 1.0
	for c := range m.cols {
		var ss float64
		for r := range m.rows {
			x := float64(m.at(c, r))
			ss += x * x
		}
		bound *= math.Sqrt(ss)
	}
	return math.Abs(float64(det)) <= eps*bound
}
