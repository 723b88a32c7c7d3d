// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"testing"

	"cogentcore.org/lamath/base/tolassert"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMgl checks m against the same transform built by mathgl,
// whose Mat4 is also 16 column-major floats.
func assertMgl(t *testing.T, want mgl32.Mat4, m Matrix[float32], tol float32) {
	t.Helper()
	tolassert.EqualTolSlice(t, want[:], m.Data(), tol)
}

func TestTranslate(t *testing.T) {
	assertMgl(t, mgl32.Translate3D(1, 2, 3), Translate[float32](1, 2, 3), 0)
	assert.Equal(t, Translate[float32](1, 2, 3), TranslateV(Vec3[float32](1, 2, 3)))

	p := TransformPoint(Translate(1.0, 2, 3), Vec3(1.0, 1, 1))
	assert.Equal(t, Vec3(2.0, 3, 4), p)

	tolAssertEqualMatrix(t, standardTol, Identity4[float64](), Translate(1.5, -2, 3).Mul(Translate(-1.5, 2, -3)))
}

func TestScale(t *testing.T) {
	assertMgl(t, mgl32.Scale3D(2, 3, 4), Scale[float32](2, 3, 4), 0)
	assert.Equal(t, Scale[float32](2, 3, 4), ScaleV(Vec3[float32](2, 3, 4)))
	assert.Equal(t, Vec3(2.0, 3, 4), TransformPoint(Scale(2.0, 3, 4), Vec3(1.0, 1, 1)))
}

func TestRotate(t *testing.T) {
	tolAssertEqualMatrix(t, standardTol, Identity4[float32](), Rotate[float32](0, 0, 0))

	assertMgl(t, mgl32.HomogRotate3DX(mgl32.DegToRad(30)), RotateX[float32](30), standardTol)
	assertMgl(t, mgl32.HomogRotate3DY(mgl32.DegToRad(-70)), RotateY[float32](-70), standardTol)
	assertMgl(t, mgl32.HomogRotate3DZ(mgl32.DegToRad(125)), RotateZ[float32](125), standardTol)

	// RotateY(90) maps +X to -Z
	tolAssertEqualVector(t, Vec3[float32](0, 0, -1), TransformDirection(RotateY[float32](90), Vec3[float32](1, 0, 0)))
	tolAssertEqualVector(t, Vec3(0.0, 1, 0), TransformDirection(RotateZ(90.0), Vec3(1.0, 0, 0)))
	tolAssertEqualVector(t, Vec3(0.0, 0, 1), TransformDirection(RotateX(90.0), Vec3(0.0, 1, 0)))

	// X is applied first, then Y, then Z
	want := RotateZ(30.0).Mul(RotateY(20.0)).Mul(RotateX(10.0))
	assert.Equal(t, want, Rotate(10.0, 20, 30))
	assert.Equal(t, want, RotateV(Vec3(10.0, 20, 30)))

	// x 90 takes +Y to +Z, then y 90 takes +Z to +X
	tolAssertEqualVector(t, Vec3(1.0, 0, 0), TransformDirection(Rotate(90.0, 90, 0), Vec3(0.0, 1, 0)))

	// rotations are orthonormal: the inverse is the transpose
	r := Rotate(12.0, -40, 77)
	inv, err := Inverse(r)
	require.NoError(t, err)
	tolAssertEqualMatrix(t, standardTol, Transpose(r), inv)
}

func TestTransformation(t *testing.T) {
	pos := Vec3[float32](1, 2, 3)
	rot := Vec3[float32](10, 20, 30)
	scl := Vec3[float32](2, 2, 0.5)
	m := Transformation(pos, rot, scl)
	assert.Equal(t, TranslateV(pos).Mul(RotateV(rot)).Mul(ScaleV(scl)), m)

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(30))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(20))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(10))).
		Mul4(mgl32.Scale3D(2, 2, 0.5))
	assertMgl(t, want, m, 1e-5)

	// scale, then rotate, then translate
	p := TransformPoint(Transformation(Vec3(1.0, 1, 1), Vec3(0.0, 90, 0), Vec3(2.0, 2, 2)), Vec3(1.0, 0, 0))
	tolAssertEqualVector(t, Vec3(1.0, 1, -1), p)
}

func TestPerspective(t *testing.T) {
	m, err := Perspective[float32](45, 16.0/9.0, 0.1, 100)
	require.NoError(t, err)
	assert.Equal(t, float32(-1), m.At(2, 3))
	assert.Equal(t, float32(0), m.At(3, 3))
	assertMgl(t, mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100), m, 1e-5)

	// near and far planes map to -1 and 1 in normalized device coordinates
	p, err := Perspective(60.0, 1.5, 0.5, 50)
	require.NoError(t, err)
	near, err := ProjectPoint(p, Vec3(0.0, 0, -0.5))
	require.NoError(t, err)
	tolAssertEqualVector(t, Vec3(0.0, 0, -1), near)
	far, err := ProjectPoint(p, Vec3(0.0, 0, -50))
	require.NoError(t, err)
	tolAssertEqualVector(t, Vec3(0.0, 0, 1), far)

	_, err = Perspective(45.0, 0, 0.1, 100)
	assert.ErrorIs(t, err, ErrDivideByZero)
	_, err = Perspective(45.0, 1, 1, 1)
	assert.ErrorIs(t, err, ErrDivideByZero)
	_, err = Perspective(0.0, 1, 0.1, 100)
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = ProjectPoint(p, Vec3(0.0, 0, 0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestOrthographic(t *testing.T) {
	m, err := Orthographic[float32](-4, 4, -3, 3, 0.1, 100)
	require.NoError(t, err)
	assertMgl(t, mgl32.Ortho(-4, 4, -3, 3, 0.1, 100), m, 1e-6)

	_, err = Orthographic[float32](1, 1, -3, 3, 0.1, 100)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestLookAt(t *testing.T) {
	eye := Vec3[float32](3, 4, 10)
	target := Vec3[float32](0, 1, 0)
	up := Vec3[float32](0, 1, 0)
	m := LookAt(eye, target, up)
	assertMgl(t, mgl32.LookAtV(mgl32.Vec3{3, 4, 10}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}), m, 1e-4)

	// the eye goes to the origin and the target onto -Z
	eye64, target64 := Vec3(3.0, 4, 10), Vec3(0.0, 1, 0)
	m64 := LookAt(eye64, target64, Vec3(0.0, 1, 0))
	tolAssertEqualVector(t, Vec3(0.0, 0, 0), TransformPoint(m64, eye64))
	tolAssertEqualVector(t, Vec3(0, 0, -Distance(eye64, target64)), TransformPoint(m64, target64))

	// degenerate input gives zeros, not NaNs
	d := LookAt(eye, eye, up)
	assert.True(t, d.Row(0).IsZero())
	assert.True(t, d.Row(2).IsZero())
}
