// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la is a small generic linear algebra package for 3D graphics:
// fixed-size [Vector] and [Matrix] values, a determinant / cofactor /
// inverse engine, and the transform builders (translate, rotate, scale,
// perspective, look-at) used to compute model, view and projection
// matrices.
//
// Dimensions are limited to [MaxDim] and are carried as a runtime field
// over fixed-size backing arrays, so vectors and matrices are plain values:
// assignment copies every element and nothing is heap allocated.
// Matrices are stored column-major and packed, so a 4x4 float32 matrix
// is 16 contiguous floats ready for a GPU uniform upload.
package la

import (
	"math"

	"github.com/chewxy/math32"
)

// MaxDim is the largest vector length and matrix dimension supported.
const MaxDim = 4

// Mathematical constants.
const (
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Singularity thresholds used by [Inverse]. A matrix is singular when
// |det| <= eps * ‖c0‖ * ‖c1‖ * ... over its columns. The product of the
// column lengths bounds |det| (Hadamard), so the test is independent of
// the scale of the entries: Scale(1e-4, 1e-4, 1e-4) is invertible.
const (
	// SingularEpsilon is the relative threshold for float64 matrices.
	SingularEpsilon = 1e-10

	// SingularEpsilon32 is the relative threshold for float32 matrices.
	SingularEpsilon32 = 1e-6
)

// Signed is the set of signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating point element types.
type Float interface {
	~float32 | ~float64
}

// Scalar is the set of element types a [Vector] or [Matrix] can hold.
type Scalar interface {
	Signed | Unsigned | Float
}

// DegToRad converts a number from degrees to radians.
func DegToRad[T Float](degrees T) T {
	return degrees * T(DegToRadFactor)
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg[T Float](radians T) T {
	return radians * T(RadToDegFactor)
}

// The helpers below use chewxy/math32 for float32 values, which has
// some optimized implementations, and the standard library otherwise.

func sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

func sin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

func cos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

func tan[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Tan(v))
	}
	return T(math.Tan(float64(x)))
}

func acos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Acos(v))
	}
	return T(math.Acos(float64(x)))
}

// diff64 returns |a-b| computed in float64, for tolerance comparisons
// on any [Scalar] including unsigned ones.
func diff64[T Scalar](a, b T) float64 {
	return math.Abs(float64(a) - float64(b))
}

func clamp[T Float](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
