// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "golang.org/x/image/math/f32"

// Conversions to and from the golang.org/x/image/math/f32 types.
// Note that f32.Mat3 and f32.Mat4 are row-major, so the matrix
// conversions transpose the storage order.

// ToF32Vec3 returns v, which must have 3 components, as an [f32.Vec3].
func ToF32Vec3(v Vector[float32]) f32.Vec3 {
	if v.n != 3 {
		panic(dimErrorf("ToF32Vec3", "vector length %d, want 3", v.n))
	}
	return f32.Vec3{v.e[0], v.e[1], v.e[2]}
}

// ToF32Vec4 returns v, which must have 4 components, as an [f32.Vec4].
func ToF32Vec4(v Vector[float32]) f32.Vec4 {
	if v.n != 4 {
		panic(dimErrorf("ToF32Vec4", "vector length %d, want 4", v.n))
	}
	return f32.Vec4{v.e[0], v.e[1], v.e[2], v.e[3]}
}

// FromF32Vec3 returns the [Vector] of an [f32.Vec3].
func FromF32Vec3(v f32.Vec3) Vector[float32] {
	return Vec3(v[0], v[1], v[2])
}

// FromF32Vec4 returns the [Vector] of an [f32.Vec4].
func FromF32Vec4(v f32.Vec4) Vector[float32] {
	return Vec4(v[0], v[1], v[2], v[3])
}

// ToF32Mat3 returns the 3x3 matrix m as a row-major [f32.Mat3].
func ToF32Mat3(m Matrix[float32]) f32.Mat3 {
	if m.rows != 3 || m.cols != 3 {
		panic(dimErrorf("ToF32Mat3", "%dx%d matrix, want 3x3", m.rows, m.cols))
	}
	var a f32.Mat3
	for r := range 3 {
		for c := range 3 {
			a[3*r+c] = m.at(c, r)
		}
	}
	return a
}

// ToF32Mat4 returns the 4x4 matrix m as a row-major [f32.Mat4].
func ToF32Mat4(m Matrix[float32]) f32.Mat4 {
	if m.rows != 4 || m.cols != 4 {
		panic(dimErrorf("ToF32Mat4", "%dx%d matrix, want 4x4", m.rows, m.cols))
	}
	var a f32.Mat4
	for r := range 4 {
		for c := range 4 {
			a[4*r+c] = m.at(c, r)
		}
	}
	return a
}

// FromF32Mat4 returns the [Matrix] of a row-major [f32.Mat4].
func FromF32Mat4(a f32.Mat4) Matrix[float32] {
	m := Matrix[float32]{rows: 4, cols: 4}
	for r := range 4 {
		for c := range 4 {
			m.set(c, r, a[4*r+c])
		}
	}
	return m
}
