// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

// Transform builders return 4x4 homogeneous matrices in the column-major
// convention, applied to column vectors as m.MulVector(p), so the
// translation lives in column 3. Angles are in degrees.

// Translate returns the matrix translating by (x, y, z).
func Translate[T Float](x, y, z T) Matrix[T] {
	m := Identity4[T]()
	m.set(3, 0, x)
	m.set(3, 1, y)
	m.set(3, 2, z)
	return m
}

// TranslateV returns the matrix translating by the 3-vector v.
func TranslateV[T Float](v Vector[T]) Matrix[T] {
	return Translate(v.X(), v.Y(), v.Z())
}

// RotateX returns the matrix rotating by the given angle in degrees
// about the X axis.
func RotateX[T Float](degrees T) Matrix[T] {
	a := DegToRad(degrees)
	c, s := cos(a), sin(a)
	return MustFromRows(
		[]T{1, 0, 0, 0},
		[]T{0, c, -s, 0},
		[]T{0, s, c, 0},
		[]T{0, 0, 0, 1},
	)
}

// RotateY returns the matrix rotating by the given angle in degrees
// about the Y axis. RotateY(90) maps +X onto -Z.
func RotateY[T Float](degrees T) Matrix[T] {
	a := DegToRad(degrees)
	c, s := cos(a), sin(a)
	return MustFromRows(
		[]T{c, 0, s, 0},
		[]T{0, 1, 0, 0},
		[]T{-s, 0, c, 0},
		[]T{0, 0, 0, 1},
	)
}

// RotateZ returns the matrix rotating by the given angle in degrees
// about the Z axis.
func RotateZ[T Float](degrees T) Matrix[T] {
	a := DegToRad(degrees)
	c, s := cos(a), sin(a)
	return MustFromRows(
		[]T{c, -s, 0, 0},
		[]T{s, c, 0, 0},
		[]T{0, 0, 1, 0},
		[]T{0, 0, 0, 1},
	)
}

// Rotate returns RotateZ(z) * RotateY(y) * RotateX(x): applied to a
// vector, the X rotation happens first, then Y, then Z.
func Rotate[T Float](x, y, z T) Matrix[T] {
	return RotateZ(z).Mul(RotateY(y)).Mul(RotateX(x))
}

// RotateV is [Rotate] with the angles taken from the 3-vector v.
func RotateV[T Float](v Vector[T]) Matrix[T] {
	return Rotate(v.X(), v.Y(), v.Z())
}

// Scale returns the matrix scaling by (x, y, z).
func Scale[T Float](x, y, z T) Matrix[T] {
	m := Identity4[T]()
	m.set(0, 0, x)
	m.set(1, 1, y)
	m.set(2, 2, z)
	return m
}

// ScaleV returns the matrix scaling by the 3-vector v.
func ScaleV[T Float](v Vector[T]) Matrix[T] {
	return Scale(v.X(), v.Y(), v.Z())
}

// Transformation returns the model matrix of a position, rotation
// (degrees) and scale triple: Translate(pos) * Rotate(rot) * Scale(scl).
// Points are scaled, then rotated, then translated.
func Transformation[T Float](pos, rot, scl Vector[T]) Matrix[T] {
	return TranslateV(pos).Mul(RotateV(rot)).Mul(ScaleV(scl))
}

// Perspective returns the OpenGL perspective projection for the given
// vertical field of view in degrees, aspect ratio (width / height) and
// near and far clip distances. Element [2][3] is -1, so the clip w of a
// point is its negated view-space z. It returns an error wrapping
// [ErrDivideByZero] for a zero aspect or field of view, or near == far.
func Perspective[T Float](fovDegrees, aspect, near, far T) (Matrix[T], error) {
	switch {
	case aspect == 0:
		return Matrix[T]{}, divErrorf("Perspective", "aspect is zero")
	case near == far:
		return Matrix[T]{}, divErrorf("Perspective", "near == far == %v", near)
	}
	t := tan(DegToRad(fovDegrees) / 2)
	if t == 0 {
		return Matrix[T]{}, divErrorf("Perspective", "field of view is zero")
	}
	f := 1 / t
	nmf := near - far
	m := Matrix[T]{rows: 4, cols: 4}
	m.set(0, 0, f/aspect)
	m.set(1, 1, f)
	m.set(2, 2, (far+near)/nmf)
	m.set(2, 3, -1)
	m.set(3, 2, 2*far*near/nmf)
	return m, nil
}

// Orthographic returns the OpenGL orthographic projection of the box
// [left, right] x [bottom, top] x [-near, -far]. It returns an error
// wrapping [ErrDivideByZero] if any pair of bounds is equal.
func Orthographic[T Float](left, right, bottom, top, near, far T) (Matrix[T], error) {
	if left == right || bottom == top || near == far {
		return Matrix[T]{}, divErrorf("Orthographic", "empty box")
	}
	rml, tmb, fmn := right-left, top-bottom, far-near
	m := Identity4[T]()
	m.set(0, 0, 2/rml)
	m.set(1, 1, 2/tmb)
	m.set(2, 2, -2/fmn)
	m.set(3, 0, -(right+left)/rml)
	m.set(3, 1, -(top+bottom)/tmb)
	m.set(3, 2, -(far+near)/fmn)
	return m, nil
}

// LookAt returns the view matrix of an eye at from looking towards to,
// with up giving the upward direction: world space is mapped so that
// from is at the origin, the view direction is -Z and up is +Y.
// Degenerate inputs (from == to, or up parallel to the view direction)
// produce zero rows rather than NaNs, following [Normalise].
func LookAt[T Float](from, to, up Vector[T]) Matrix[T] {
	f := Normalise(to.Sub(from))
	s := Normalise(Cross(f, Normalise(up)))
	u := Cross(s, f)
	return MustFromRows(
		[]T{s.e[0], s.e[1], s.e[2], -Dot(s, from)},
		[]T{u.e[0], u.e[1], u.e[2], -Dot(u, from)},
		[]T{-f.e[0], -f.e[1], -f.e[2], Dot(f, from)},
		[]T{0, 0, 0, 1},
	)
}
