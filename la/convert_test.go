// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func TestF32(t *testing.T) {
	m := Translate[float32](1, 2, 3)
	a := ToF32Mat4(m)
	assert.Equal(t, f32.Mat4{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	}, a)
	assert.Equal(t, m, FromF32Mat4(a))

	r := Rotate[float32](10, 20, 30)
	assert.Equal(t, r, FromF32Mat4(ToF32Mat4(r)))

	m3 := MustFromRows([]float32{1, 2, 3}, []float32{4, 5, 6}, []float32{7, 8, 9})
	assert.Equal(t, f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, ToF32Mat3(m3))

	v := Vec3[float32](1, 2, 3)
	assert.Equal(t, f32.Vec3{1, 2, 3}, ToF32Vec3(v))
	assert.Equal(t, v, FromF32Vec3(ToF32Vec3(v)))
	v4 := Vec4[float32](1, 2, 3, 4)
	assert.Equal(t, v4, FromF32Vec4(ToF32Vec4(v4)))

	assertPanicsIs(t, ErrDimensionMismatch, func() { ToF32Mat4(m3) })
	assertPanicsIs(t, ErrDimensionMismatch, func() { ToF32Mat3(m) })
	assertPanicsIs(t, ErrDimensionMismatch, func() { ToF32Vec3(v4) })
	assertPanicsIs(t, ErrDimensionMismatch, func() { ToF32Vec4(v) })
}
