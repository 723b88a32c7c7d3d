// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminant(t *testing.T) {
	for n := 1; n <= MaxDim; n++ {
		assert.Equal(t, 1, Determinant(Identity[int](n)), "n=%d", n)
		assert.Equal(t, float32(1), Identity[float32](n).Determinant(), "n=%d", n)
	}

	assert.Equal(t, 7, Determinant(MustFromRows([]int{7})))
	assert.Equal(t, -2, Determinant(MustFromRows([]int{1, 2}, []int{3, 4})))
	assert.Equal(t, -306, Determinant(MustFromRows(
		[]int{6, 1, 1},
		[]int{4, -2, 5},
		[]int{2, 8, 7},
	)))
	assert.Equal(t, 30.0, Determinant(MustFromRows(
		[]float64{1, 0, 2, -1},
		[]float64{3, 0, 0, 5},
		[]float64{2, 1, 4, -3},
		[]float64{1, 0, 5, 0},
	)))

	// det(A) == det(transpose(A))
	a := MustFromRows(
		[]int{2, -3, 1, 5},
		[]int{4, 0, -2, 1},
		[]int{1, 7, 3, -4},
		[]int{0, 2, 6, 1},
	)
	assert.Equal(t, Determinant(a), Determinant(Transpose(a)))

	assertPanicsIs(t, ErrDimensionMismatch, func() { Determinant(NewMatrix[int](2, 3)) })
}

func TestSubMatrix(t *testing.T) {
	m := MustFromRows(
		[]int{1, 2, 3},
		[]int{4, 5, 6},
		[]int{7, 8, 9},
	)
	s, err := SubMatrix(m, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, MustFromRows([]int{5, 6}, []int{8, 9}), s)

	// delete column 1 and row 2
	s, err = SubMatrix(m, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, MustFromRows([]int{1, 3}, []int{4, 6}), s)

	_, err = SubMatrix(m, 3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = SubMatrix(m, 0, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = SubMatrix(MustFromRows([]int{1}), 0, 0)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCofactors(t *testing.T) {
	m := MustFromRows([]int{1, 2}, []int{3, 4})
	assert.Equal(t, MustFromRows([]int{4, 3}, []int{2, 1}), Minors(m))
	assert.Equal(t, MustFromRows([]int{4, -3}, []int{-2, 1}), Cofactors(m))
	assert.Equal(t, MustFromRows([]int{4, -2}, []int{-3, 1}), Adjugate(m))

	// A * adj(A) == det(A) * I
	a := MustFromRows(
		[]int{6, 1, 1},
		[]int{4, -2, 5},
		[]int{2, 8, 7},
	)
	assert.Equal(t, Identity[int](3).MulScalar(Determinant(a)), a.Mul(Adjugate(a)))
}

func TestInverse(t *testing.T) {
	inv, err := Inverse(MustFromRows([]float64{1, 2}, []float64{3, 4}))
	require.NoError(t, err)
	tolAssertEqualMatrix(t, standardTol, MustFromRows([]float64{-2, 1}, []float64{1.5, -0.5}), inv)

	inv32, err := Inverse(MustFromRows([]float32{4}))
	require.NoError(t, err)
	assert.Equal(t, MustFromRows([]float32{0.25}), inv32)

	for n := 1; n <= MaxDim; n++ {
		inv, err := Inverse(Identity[float64](n))
		require.NoError(t, err)
		assert.Equal(t, Identity[float64](n), inv)
	}

	ms := []Matrix[float32]{
		MustFromRows([]float32{6, 1, 1}, []float32{4, -2, 5}, []float32{2, 8, 7}),
		Transformation(Vec3[float32](1, -2, 3), Vec3[float32](30, 45, 60), Vec3[float32](2, 0.5, 1)),
		Rotate[float32](-15, 80, 5),
		MustFromRows(
			[]float32{1, 0, 2, -1},
			[]float32{3, 0, 0, 5},
			[]float32{2, 1, 4, -3},
			[]float32{1, 0, 5, 0},
		),
	}
	for _, m := range ms {
		inv, err := Inverse(m)
		require.NoError(t, err)
		id := Identity[float32](m.Rows())
		tolAssertEqualMatrix(t, 1e-4, id, m.Mul(inv))
		tolAssertEqualMatrix(t, 1e-4, id, inv.Mul(m))
	}
}

func TestInverseSingular(t *testing.T) {
	_, err := Inverse(MustFromRows([]float64{1, 2}, []float64{2, 4}))
	assert.ErrorIs(t, err, ErrSingularMatrix)

	_, err = Inverse(MatrixScalar[float32](3, 3, 0))
	assert.ErrorIs(t, err, ErrSingularMatrix)

	_, err = Inverse(Scale[float32](1, 0, 1))
	assert.ErrorIs(t, err, ErrSingularMatrix)

	// nearly dependent columns, relative to their length
	_, err = Inverse(MustFromRows([]float32{1, 2}, []float32{2, 4.000001}))
	assert.ErrorIs(t, err, ErrSingularMatrix)
	_, err = Inverse(MustFromRows([]float64{1e6, 2e6}, []float64{2e6, 4e6 + 1e-6}))
	assert.ErrorIs(t, err, ErrSingularMatrix)

	assertPanicsIs(t, ErrSingularMatrix, func() { MustInverse(MatrixScalar[float64](2, 2, 1)) })
	assertPanicsIs(t, ErrDimensionMismatch, func() { Inverse(NewMatrix[float64](3, 4)) })
}

func TestInverseSmallScale(t *testing.T) {
	inv, err := Inverse(Scale(1e-4, 1e-4, 1e-4))
	require.NoError(t, err)
	tolAssertEqualMatrix(t, 1e-6, Scale(1e4, 1e4, 1e4), inv)

	s32 := Scale[float32](1e-3, 1e-3, 1e-3)
	inv32, err := Inverse(s32)
	require.NoError(t, err)
	tolAssertEqualMatrix(t, 1e-4, Identity4[float32](), s32.Mul(inv32))

	// a deep orthographic box has a tiny determinant but is well conditioned
	o, err := Orthographic[float32](-2679, 2679, -1786, 1786, 0.01, 10000)
	require.NoError(t, err)
	oinv, err := Inverse(o)
	require.NoError(t, err)
	tolAssertEqualMatrix(t, 1e-4, Identity4[float32](), o.Mul(oinv))
}
