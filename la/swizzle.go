// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

// Named component accessors. The position (x, y, z, w), color
// (r, g, b, a) and texture (s, t, p, q) names are synonyms for
// components 0-3 of the same storage. Like [Vector.At] they panic with
// an [*IndexError] when the vector is too short for the name.

// X returns component 0.
func (v Vector[T]) X() T { return v.At(0) }

// Y returns component 1.
func (v Vector[T]) Y() T { return v.At(1) }

// Z returns component 2.
func (v Vector[T]) Z() T { return v.At(2) }

// W returns component 3.
func (v Vector[T]) W() T { return v.At(3) }

// R returns component 0.
func (v Vector[T]) R() T { return v.At(0) }

// G returns component 1.
func (v Vector[T]) G() T { return v.At(1) }

// B returns component 2.
func (v Vector[T]) B() T { return v.At(2) }

// A returns component 3.
func (v Vector[T]) A() T { return v.At(3) }

// S returns component 0.
func (v Vector[T]) S() T { return v.At(0) }

// T returns component 1.
func (v Vector[T]) T() T { return v.At(1) }

// P returns component 2.
func (v Vector[T]) P() T { return v.At(2) }

// Q returns component 3.
func (v Vector[T]) Q() T { return v.At(3) }

func (v *Vector[T]) SetX(x T) { v.Set(0, x) }
func (v *Vector[T]) SetY(y T) { v.Set(1, y) }
func (v *Vector[T]) SetZ(z T) { v.Set(2, z) }
func (v *Vector[T]) SetW(w T) { v.Set(3, w) }

func (v *Vector[T]) SetR(r T) { v.Set(0, r) }
func (v *Vector[T]) SetG(g T) { v.Set(1, g) }
func (v *Vector[T]) SetB(b T) { v.Set(2, b) }
func (v *Vector[T]) SetA(a T) { v.Set(3, a) }

func (v *Vector[T]) SetS(s T) { v.Set(0, s) }
func (v *Vector[T]) SetT(t T) { v.Set(1, t) }
func (v *Vector[T]) SetP(p T) { v.Set(2, p) }
func (v *Vector[T]) SetQ(q T) { v.Set(3, q) }

// XY returns the first two components as a new vector.
func (v Vector[T]) XY() Vector[T] {
	return Vec2(v.X(), v.Y())
}

// XYZ returns the first three components as a new vector,
// e.g. the point part of a homogeneous 4-vector.
func (v Vector[T]) XYZ() Vector[T] {
	return Vec3(v.X(), v.Y(), v.Z())
}

// Extend returns v with one more component appended.
// It panics with a [*DimensionError] if v already has [MaxDim] components.
func (v Vector[T]) Extend(x T) Vector[T] {
	if v.n >= MaxDim {
		panic(dimErrorf("Extend", "vector already has %d components", v.n))
	}
	v.e[v.n] = x
	v.n++
	return v
}
