// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

// Dot returns the dot product of a and b, which must have the same length.
func Dot[T Scalar](a, b Vector[T]) T {
	a.sameLen("Dot", b)
	var sum T
	for i := range a.n {
		sum += a.e[i] * b.e[i]
	}
	return sum
}

// Cross returns the cross product a x b of two 3-component vectors.
func Cross[T Scalar](a, b Vector[T]) Vector[T] {
	if a.n != 3 || b.n != 3 {
		panic(dimErrorf("Cross", "vector lengths %d and %d, want 3", a.n, b.n))
	}
	return Vec3(
		a.e[1]*b.e[2]-a.e[2]*b.e[1],
		a.e[2]*b.e[0]-a.e[0]*b.e[2],
		a.e[0]*b.e[1]-a.e[1]*b.e[0],
	)
}

// Magnitude returns the Euclidean length of v.
func Magnitude[T Float](v Vector[T]) T {
	return sqrt(Dot(v, v))
}

// Mag is short for [Magnitude].
func Mag[T Float](v Vector[T]) T { return Magnitude(v) }

// Normalise returns v scaled to unit length. A zero-length vector is
// returned unchanged (all zeros) rather than divided by zero.
func Normalise[T Float](v Vector[T]) Vector[T] {
	l := Magnitude(v)
	if l == 0 {
		return v
	}
	return v.MulScalar(1 / l)
}

// Norm is short for [Normalise].
func Norm[T Float](v Vector[T]) Vector[T] { return Normalise(v) }

// Distance returns the Euclidean distance between points a and b.
func Distance[T Float](a, b Vector[T]) T {
	return Magnitude(a.Sub(b))
}

// AngleBetween returns the angle in radians between a and b, in [0, Pi].
// It returns an error wrapping [ErrDivideByZero] if either has zero length.
func AngleBetween[T Float](a, b Vector[T]) (T, error) {
	ma, mb := Magnitude(a), Magnitude(b)
	if ma == 0 || mb == 0 {
		return 0, divErrorf("AngleBetween", "zero-length vector")
	}
	return acos(clamp(Dot(a, b)/(ma*mb), -1, 1)), nil
}

// Project returns the projection of from onto the direction of onto:
// onto * (dot(from, onto) / dot(onto, onto)). It returns an error
// wrapping [ErrDivideByZero] if onto is the zero vector.
func Project[T Float](from, onto Vector[T]) (Vector[T], error) {
	d := Dot(onto, onto)
	if d == 0 {
		return Vector[T]{}, divErrorf("Project", "projection onto zero vector")
	}
	return onto.MulScalar(Dot(from, onto) / d), nil
}

// Lerp returns the linear interpolation a + (b-a)*t.
func Lerp[T Float](a, b Vector[T], t T) Vector[T] {
	return a.Add(b.Sub(a).MulScalar(t))
}

// TransformPoint applies the 4x4 homogeneous matrix m to the
// 3-component point p (w = 1) and returns the x, y, z of the result.
// No perspective divide is done; see [ProjectPoint].
func TransformPoint[T Float](m Matrix[T], p Vector[T]) Vector[T] {
	return m.MulVector(p.Extend(1)).XYZ()
}

// TransformDirection applies the 4x4 homogeneous matrix m to the
// 3-component direction d (w = 0), so translation is ignored.
func TransformDirection[T Float](m Matrix[T], d Vector[T]) Vector[T] {
	return m.MulVector(d.Extend(0)).XYZ()
}

// ProjectPoint applies m to p (w = 1) and divides by the resulting w,
// mapping a point through a projection matrix into normalized device
// coordinates. It returns an error wrapping [ErrDivideByZero] if w is zero.
func ProjectPoint[T Float](m Matrix[T], p Vector[T]) (Vector[T], error) {
	h := m.MulVector(p.Extend(1))
	w := h.W()
	if w == 0 {
		return Vector[T]{}, divErrorf("ProjectPoint", "homogeneous w is zero")
	}
	return h.XYZ().MulScalar(1 / w), nil
}
