// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"testing"

	"cogentcore.org/lamath/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotCross(t *testing.T) {
	assert.Equal(t, 32, Dot(Vec3(1, 2, 3), Vec3(4, 5, 6)))
	assert.Equal(t, Vec3(0, 0, 1), Cross(Vec3(1, 0, 0), Vec3(0, 1, 0)))
	assert.Equal(t, Vec3(0, 0, -1), Cross(Vec3(0, 1, 0), Vec3(1, 0, 0)))
	assert.Equal(t, Vec3(-3, 6, -3), Cross(Vec3(1, 2, 3), Vec3(4, 5, 6)))

	assertPanicsIs(t, ErrDimensionMismatch, func() { Cross(Vec2(1, 0), Vec2(0, 1)) })
	assertPanicsIs(t, ErrDimensionMismatch, func() { Dot(Vec2(1, 0), Vec3(0, 1, 0)) })
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, Magnitude(Vec2(3.0, 4)))
	assert.Equal(t, float32(5), Mag(Vec3[float32](0, 3, 4)))
	assert.Equal(t, 5.0, Distance(Vec3(1.0, 1, 1), Vec3(4.0, 5, 1)))

	n := Normalise(Vec3(3.0, 4, 0))
	tolAssertEqualVector(t, Vec3(0.6, 0.8, 0), n)
	tolassert.EqualTol(t, 1, Magnitude(n), standardTol)
	assert.Equal(t, n, Norm(Vec3(3.0, 4, 0)))

	// zero length normalises to zero instead of dividing by zero
	assert.Equal(t, Vec3(0.0, 0, 0), Normalise(Vec3(0.0, 0, 0)))
	assert.Equal(t, Vec2[float32](0, 0), Norm(Vec2[float32](0, 0)))
}

func TestAngleBetween(t *testing.T) {
	a, err := AngleBetween(Vec3(1.0, 0, 0), Vec3(0.0, 2, 0))
	require.NoError(t, err)
	tolassert.EqualTol(t, Pi/2, a, standardTol)

	a32, err := AngleBetween(Vec2[float32](1, 1), Vec2[float32](2, 2))
	require.NoError(t, err)
	tolassert.EqualTol(t, 0, a32, 1e-3)

	a, err = AngleBetween(Vec2(1.0, 0), Vec2(-3.0, 0))
	require.NoError(t, err)
	tolassert.EqualTol(t, Pi, a, standardTol)

	_, err = AngleBetween(Vec3(0.0, 0, 0), Vec3(1.0, 0, 0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestProject(t *testing.T) {
	p, err := Project(Vec3(2.0, 2, 0), Vec3(3.0, 0, 0))
	require.NoError(t, err)
	tolAssertEqualVector(t, Vec3(2.0, 0, 0), p)

	p, err = Project(Vec2(1.0, 3), Vec2(1.0, 1))
	require.NoError(t, err)
	assert.Equal(t, Vec2(2.0, 2), p)

	_, err = Project(Vec3(2.0, 2, 0), Vec3(0.0, 0, 0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestLerp(t *testing.T) {
	a, b := Vec3(0.0, 0, 0), Vec3(2.0, 4, -6)
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, Vec3(1.0, 2, -3), Lerp(a, b, 0.5))
}

func TestTransformDirection(t *testing.T) {
	m := Translate(5.0, 6, 7).Mul(Scale(2.0, 2, 2))
	assert.Equal(t, Vec3(2.0, 0, 0), TransformDirection(m, Vec3(1.0, 0, 0)))
	assert.Equal(t, Vec3(7.0, 6, 7), TransformPoint(m, Vec3(1.0, 0, 0)))
	assertPanicsIs(t, ErrDimensionMismatch, func() { TransformPoint(Identity3[float64](), Vec3(1.0, 0, 0)) })
}
