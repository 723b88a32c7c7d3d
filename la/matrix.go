// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"fmt"
	"strings"

	"cogentcore.org/lamath/base/errors"
)

// Matrix is a rows x cols matrix of up to [MaxDim] x [MaxDim] scalars,
// stored as cols column vectors of length rows (column-major).
// Columns are packed, so element (col c, row r) is at index c*rows+r
// of [Matrix.Data], and a 4x4 matrix is 16 contiguous values in the
// order a GPU uniform-matrix upload expects.
//
// The zero value has no rows or columns; use [NewMatrix], [Identity]
// or [FromRows] to make matrices.
type Matrix[T Scalar] struct {
	rows, cols int
	e          [MaxDim * MaxDim]T
}

// NewMatrix returns a rows x cols matrix with the identity pattern:
// ones on the diagonal and zeros elsewhere. This is the neutral element
// of [Matrix.Mul] when rows == cols. It panics with a [*DimensionError]
// if either dimension is not in [1, MaxDim].
func NewMatrix[T Scalar](rows, cols int) Matrix[T] {
	mustValidDim("NewMatrix", rows)
	mustValidDim("NewMatrix", cols)
	m := Matrix[T]{rows: rows, cols: cols}
	for i := range min(rows, cols) {
		m.e[i*rows+i] = 1
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity[T Scalar](n int) Matrix[T] {
	return NewMatrix[T](n, n)
}

// Identity2 returns the 2x2 identity matrix.
func Identity2[T Scalar]() Matrix[T] { return Identity[T](2) }

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Scalar]() Matrix[T] { return Identity[T](3) }

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Scalar]() Matrix[T] { return Identity[T](4) }

// MatrixScalar returns a rows x cols matrix with every element set to s.
func MatrixScalar[T Scalar](rows, cols int, s T) Matrix[T] {
	mustValidDim("MatrixScalar", rows)
	mustValidDim("MatrixScalar", cols)
	m := Matrix[T]{rows: rows, cols: cols}
	for i := range rows * cols {
		m.e[i] = s
	}
	return m
}

// FromColumns returns the matrix with the given column vectors, which
// must all have the same length. The number of columns is len(cols).
func FromColumns[T Scalar](cols ...Vector[T]) (Matrix[T], error) {
	if !validDim(len(cols)) {
		return Matrix[T]{}, dimErrorf("FromColumns", "%d columns not in [1,%d]", len(cols), MaxDim)
	}
	rows := cols[0].Len()
	if !validDim(rows) {
		return Matrix[T]{}, dimErrorf("FromColumns", "column length %d not in [1,%d]", rows, MaxDim)
	}
	m := Matrix[T]{rows: rows, cols: len(cols)}
	for c, col := range cols {
		if col.Len() != rows {
			return Matrix[T]{}, dimErrorf("FromColumns", "column %d has length %d, want %d", c, col.Len(), rows)
		}
		copy(m.e[c*rows:], col.e[:rows])
	}
	return m, nil
}

// FromRows returns the matrix written as the given row-major literal:
//
//	m, err := la.FromRows(
//		[]float32{1, 2, 3},
//		[]float32{4, 5, 6},
//	)
//
// is the 2x3 matrix whose first row is 1 2 3. The literal is transposed
// into column-major storage, so m.At(col, row) == rows[row][col]. All rows
// must have the same length.
func FromRows[T Scalar](rows ...[]T) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, dimErrorf("FromRows", "no rows")
	}
	return FromRowsSized(len(rows), len(rows[0]), rows...)
}

// FromRowsSized is [FromRows] for a literal that must be exactly
// n rows of m values each.
func FromRowsSized[T Scalar](n, m int, rows ...[]T) (Matrix[T], error) {
	if !validDim(n) || !validDim(m) {
		return Matrix[T]{}, dimErrorf("FromRows", "%dx%d not in [1,%d]", n, m, MaxDim)
	}
	if len(rows) != n {
		return Matrix[T]{}, dimErrorf("FromRows", "%d rows, want %d", len(rows), n)
	}
	mat := Matrix[T]{rows: n, cols: m}
	for r, row := range rows {
		if len(row) != m {
			return Matrix[T]{}, dimErrorf("FromRows", "row %d has %d values, want %d", r, len(row), m)
		}
		for c, x := range row {
			mat.e[c*n+r] = x
		}
	}
	return mat, nil
}

// MustFromRows is [FromRows] that panics on error, for literals known
// to be well formed.
func MustFromRows[T Scalar](rows ...[]T) Matrix[T] {
	return errors.Must1(FromRows(rows...))
}

// Rows returns the number of rows (the length of a column).
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns (the length of a row).
func (m Matrix[T]) Cols() int { return m.cols }

// IsSquare reports whether m has as many rows as columns.
func (m Matrix[T]) IsSquare() bool {
	return m.rows == m.cols && m.rows > 0
}

func (m Matrix[T]) checkCol(c int) {
	if c < 0 || c >= m.cols {
		panic(&IndexError{What: "column", Index: c, Len: m.cols})
	}
}

func (m Matrix[T]) checkRow(r int) {
	if r < 0 || r >= m.rows {
		panic(&IndexError{What: "row", Index: r, Len: m.rows})
	}
}

// at is the unchecked element accessor used by the algorithms.
func (m *Matrix[T]) at(c, r int) T {
	return m.e[c*m.rows+r]
}

func (m *Matrix[T]) set(c, r int, x T) {
	m.e[c*m.rows+r] = x
}

// At returns the element in column c, row r.
// It panics with an [*IndexError] if either index is out of range.
func (m Matrix[T]) At(c, r int) T {
	m.checkCol(c)
	m.checkRow(r)
	return m.at(c, r)
}

// Set sets the element in column c, row r.
func (m *Matrix[T]) Set(c, r int, x T) {
	m.checkCol(c)
	m.checkRow(r)
	m.set(c, r, x)
}

// Col returns a copy of column c. It panics with an [*IndexError]
// if c is out of range; use [Matrix.GetCol] for a checked access.
func (m Matrix[T]) Col(c int) Vector[T] {
	m.checkCol(c)
	v := Vector[T]{n: m.rows}
	copy(v.e[:], m.e[c*m.rows:(c+1)*m.rows])
	return v
}

// GetCol returns a copy of column c, or an error wrapping [ErrIndexOutOfRange].
func (m Matrix[T]) GetCol(c int) (Vector[T], error) {
	if c < 0 || c >= m.cols {
		return Vector[T]{}, &IndexError{What: "column", Index: c, Len: m.cols}
	}
	return m.Col(c), nil
}

// SetCol replaces column c with v, which must have [Matrix.Rows] components.
func (m *Matrix[T]) SetCol(c int, v Vector[T]) {
	m.checkCol(c)
	if v.n != m.rows {
		panic(dimErrorf("SetCol", "column length %d, want %d", v.n, m.rows))
	}
	copy(m.e[c*m.rows:], v.e[:v.n])
}

// Row returns a copy of row r.
func (m Matrix[T]) Row(r int) Vector[T] {
	m.checkRow(r)
	v := Vector[T]{n: m.cols}
	for c := range m.cols {
		v.e[c] = m.at(c, r)
	}
	return v
}

// SetRow replaces row r with v, which must have [Matrix.Cols] components.
func (m *Matrix[T]) SetRow(r int, v Vector[T]) {
	m.checkRow(r)
	if v.n != m.cols {
		panic(dimErrorf("SetRow", "row length %d, want %d", v.n, m.cols))
	}
	for c := range m.cols {
		m.set(c, r, v.e[c])
	}
}

// Data returns the packed column-major elements. The slice aliases m,
// so it can be handed directly to a GPU upload without copying.
func (m *Matrix[T]) Data() []T {
	return m.e[:m.rows*m.cols]
}

// Ptr returns a pointer to element 0 of the contiguous column-major
// storage, for APIs that take a raw pointer.
func (m *Matrix[T]) Ptr() *T {
	return &m.e[0]
}

// Values returns a newly allocated copy of [Matrix.Data].
func (m Matrix[T]) Values() []T {
	s := make([]T, m.rows*m.cols)
	copy(s, m.e[:])
	return s
}

// String returns the matrix in row-major reading order, e.g. [1 2; 3 4].
func (m Matrix[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for r := range m.rows {
		if r > 0 {
			b.WriteString("; ")
		}
		for c := range m.cols {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, m.at(c, r))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (m Matrix[T]) sameShape(op string, o Matrix[T]) {
	if m.rows != o.rows || m.cols != o.cols {
		panic(dimErrorf(op, "%dx%d and %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
}

// Add returns the element-wise sum m + o. Like all element-wise
// operations it panics with a [*DimensionError] if the shapes differ.
func (m Matrix[T]) Add(o Matrix[T]) Matrix[T] {
	m.sameShape("Add", o)
	for i := range m.rows * m.cols {
		m.e[i] += o.e[i]
	}
	return m
}

// AddScalar returns m with s added to every element.
func (m Matrix[T]) AddScalar(s T) Matrix[T] {
	for i := range m.rows * m.cols {
		m.e[i] += s
	}
	return m
}

// Sub returns the element-wise difference m - o.
func (m Matrix[T]) Sub(o Matrix[T]) Matrix[T] {
	m.sameShape("Sub", o)
	for i := range m.rows * m.cols {
		m.e[i] -= o.e[i]
	}
	return m
}

// SubScalar returns m with s subtracted from every element.
func (m Matrix[T]) SubScalar(s T) Matrix[T] {
	for i := range m.rows * m.cols {
		m.e[i] -= s
	}
	return m
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix[T]) MulScalar(s T) Matrix[T] {
	for i := range m.rows * m.cols {
		m.e[i] *= s
	}
	return m
}

// Mul returns the matrix product m * o, which requires
// m.Cols() == o.Rows() and has m.Rows() rows and o.Cols() columns.
// Column i of the result is m applied to column i of o:
//
//	result[i][j] = Σ_k m[k][j] * o[i][k]
//
// indexing [col][row]. Transforms compose right to left:
// (a.Mul(b)).MulVector(v) applies b first.
func (m Matrix[T]) Mul(o Matrix[T]) Matrix[T] {
	if m.cols != o.rows {
		panic(dimErrorf("Mul", "%dx%d times %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
	res := Matrix[T]{rows: m.rows, cols: o.cols}
	for i := range o.cols {
		for j := range m.rows {
			var sum T
			for k := range m.cols {
				sum += m.at(k, j) * o.at(i, k)
			}
			res.set(i, j, sum)
		}
	}
	return res
}

// MulVector returns the matrix-vector product m * v, treating v as a
// column vector of [Matrix.Cols] components. The result has
// [Matrix.Rows] components.
func (m Matrix[T]) MulVector(v Vector[T]) Vector[T] {
	if v.n != m.cols {
		panic(dimErrorf("MulVector", "%dx%d times vector of length %d", m.rows, m.cols, v.n))
	}
	res := Vector[T]{n: m.rows}
	for j := range m.rows {
		var sum T
		for k := range m.cols {
			sum += m.at(k, j) * v.e[k]
		}
		res.e[j] = sum
	}
	return res
}

// MulMatrix returns the row-vector-matrix product v * m, treating v as
// a row vector of m.Rows() components. The result has m.Cols() components.
func (v Vector[T]) MulMatrix(m Matrix[T]) Vector[T] {
	if v.n != m.rows {
		panic(dimErrorf("MulMatrix", "vector of length %d times %dx%d", v.n, m.rows, m.cols))
	}
	res := Vector[T]{n: m.cols}
	for i := range m.cols {
		var sum T
		for k := range m.rows {
			sum += v.e[k] * m.at(i, k)
		}
		res.e[i] = sum
	}
	return res
}

// SetAdd sets m to m + o and returns m for chaining.
func (m *Matrix[T]) SetAdd(o Matrix[T]) *Matrix[T] {
	*m = m.Add(o)
	return m
}

// SetSub sets m to m - o and returns m.
func (m *Matrix[T]) SetSub(o Matrix[T]) *Matrix[T] {
	*m = m.Sub(o)
	return m
}

// SetMul sets m to m * o and returns m.
func (m *Matrix[T]) SetMul(o Matrix[T]) *Matrix[T] {
	*m = m.Mul(o)
	return m
}

// SetMulScalar sets m to m * s and returns m.
func (m *Matrix[T]) SetMulScalar(s T) *Matrix[T] {
	*m = m.MulScalar(s)
	return m
}

// Transpose returns the cols x rows matrix t with t[j][i] = m[i][j].
func Transpose[T Scalar](m Matrix[T]) Matrix[T] {
	t := Matrix[T]{rows: m.cols, cols: m.rows}
	for c := range m.cols {
		for r := range m.rows {
			t.set(r, c, m.at(c, r))
		}
	}
	return t
}

// DivMatrix returns a * Inverse(b). It returns an error wrapping
// [ErrSingularMatrix] if b has no inverse.
func DivMatrix[T Float](a, b Matrix[T]) (Matrix[T], error) {
	inv, err := Inverse(b)
	if err != nil {
		return Matrix[T]{}, fmt.Errorf("la: DivMatrix: %w", err)
	}
	return a.Mul(inv), nil
}

// Equal reports whether m and o have the same shape and exactly equal elements.
func (m Matrix[T]) Equal(o Matrix[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.rows * m.cols {
		if m.e[i] != o.e[i] {
			return false
		}
	}
	return true
}

// IsApprox reports whether m and o have the same shape and every pair
// of elements differs by at most tol.
func (m Matrix[T]) IsApprox(o Matrix[T], tol float64) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.rows * m.cols {
		if diff64(m.e[i], o.e[i]) > tol {
			return false
		}
	}
	return true
}
