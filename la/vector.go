// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"fmt"
	"strings"
)

// Vector is an ordered tuple of up to [MaxDim] scalars of type T.
// Lengths above MaxDim (4) are not supported: constructors return an
// error wrapping [ErrDimensionMismatch] and [Splat] panics.
// The length is fixed when the vector is created. Slots past the
// length are always zero, which keeps == equivalent to [Vector.Equal].
//
// The zero value has length 0 and is only useful as a placeholder;
// use [NewVector], [Splat] or [Vec3] and friends to make vectors.
type Vector[T Scalar] struct {
	n int
	e [MaxDim]T
}

// NewVector returns a vector of length n holding the given values,
// with the remaining slots zero. It returns an error wrapping
// [ErrDimensionMismatch] if n is not in [1, MaxDim] or more than n
// values are given.
func NewVector[T Scalar](n int, vals ...T) (Vector[T], error) {
	if !validDim(n) {
		return Vector[T]{}, dimErrorf("NewVector", "length %d not in [1,%d]", n, MaxDim)
	}
	if len(vals) > n {
		return Vector[T]{}, dimErrorf("NewVector", "%d values for length %d", len(vals), n)
	}
	v := Vector[T]{n: n}
	copy(v.e[:], vals)
	return v, nil
}

// FromSlice returns a vector with the length and values of the given
// slice, typically a fixed array sliced with a[:].
func FromSlice[T Scalar](vals []T) (Vector[T], error) {
	return NewVector(len(vals), vals...)
}

// Splat returns a vector of length n with every component set to s.
// It panics if n is not in [1, MaxDim].
func Splat[T Scalar](n int, s T) Vector[T] {
	mustValidDim("Splat", n)
	v := Vector[T]{n: n}
	for i := range n {
		v.e[i] = s
	}
	return v
}

// Vec1 returns a new one-component vector.
func Vec1[T Scalar](x T) Vector[T] {
	return Vector[T]{n: 1, e: [MaxDim]T{x}}
}

// Vec2 returns a new [Vector] with the given x and y components.
func Vec2[T Scalar](x, y T) Vector[T] {
	return Vector[T]{n: 2, e: [MaxDim]T{x, y}}
}

// Vec3 returns a new [Vector] with the given x, y and z components.
func Vec3[T Scalar](x, y, z T) Vector[T] {
	return Vector[T]{n: 3, e: [MaxDim]T{x, y, z}}
}

// Vec4 returns a new [Vector] with the given x, y, z and w components.
func Vec4[T Scalar](x, y, z, w T) Vector[T] {
	return Vector[T]{n: 4, e: [MaxDim]T{x, y, z, w}}
}

// Len returns the number of components.
func (v Vector[T]) Len() int {
	return v.n
}

func (v Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.n {
		panic(&IndexError{What: "vector", Index: i, Len: v.n})
	}
}

// At returns component i. It panics with an [*IndexError] if i is
// out of range; use [Vector.Get] for a checked access.
func (v Vector[T]) At(i int) T {
	v.checkIndex(i)
	return v.e[i]
}

// Get returns component i, or an error wrapping [ErrIndexOutOfRange].
func (v Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, &IndexError{What: "vector", Index: i, Len: v.n}
	}
	return v.e[i], nil
}

// Set sets component i to x. It panics if i is out of range.
func (v *Vector[T]) Set(i int, x T) {
	v.checkIndex(i)
	v.e[i] = x
}

// Ptr returns a pointer to component i for in-place mutation.
// It panics if i is out of range.
func (v *Vector[T]) Ptr(i int) *T {
	v.checkIndex(i)
	return &v.e[i]
}

// Values returns a newly allocated slice with the components.
func (v Vector[T]) Values() []T {
	s := make([]T, v.n)
	copy(s, v.e[:v.n])
	return s
}

func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := range v.n {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v.e[i])
	}
	b.WriteByte(')')
	return b.String()
}

func (v Vector[T]) sameLen(op string, o Vector[T]) {
	if v.n != o.n {
		panic(dimErrorf(op, "vector lengths %d and %d", v.n, o.n))
	}
}

// Add returns the element-wise sum v + o.
// Like all element-wise operations it panics with a
// [*DimensionError] if the lengths differ.
func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	v.sameLen("Add", o)
	for i := range v.n {
		v.e[i] += o.e[i]
	}
	return v
}

// AddScalar returns v with s added to every component. s + v is the same.
func (v Vector[T]) AddScalar(s T) Vector[T] {
	for i := range v.n {
		v.e[i] += s
	}
	return v
}

// Sub returns the element-wise difference v - o.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	v.sameLen("Sub", o)
	for i := range v.n {
		v.e[i] -= o.e[i]
	}
	return v
}

// SubScalar returns v with s subtracted from every component.
func (v Vector[T]) SubScalar(s T) Vector[T] {
	for i := range v.n {
		v.e[i] -= s
	}
	return v
}

// ScalarSub returns s - v, component-wise.
func (v Vector[T]) ScalarSub(s T) Vector[T] {
	for i := range v.n {
		v.e[i] = s - v.e[i]
	}
	return v
}

// Mul returns the element-wise product v * o.
func (v Vector[T]) Mul(o Vector[T]) Vector[T] {
	v.sameLen("Mul", o)
	for i := range v.n {
		v.e[i] *= o.e[i]
	}
	return v
}

// MulScalar returns v with every component multiplied by s. s * v is the same.
func (v Vector[T]) MulScalar(s T) Vector[T] {
	for i := range v.n {
		v.e[i] *= s
	}
	return v
}

// Div returns the element-wise quotient v / o, or an error wrapping
// [ErrDivideByZero] if any component of o is zero.
func (v Vector[T]) Div(o Vector[T]) (Vector[T], error) {
	v.sameLen("Div", o)
	for i := range o.n {
		if o.e[i] == 0 {
			return Vector[T]{}, divErrorf("Div", "divisor component %d is zero", i)
		}
	}
	for i := range v.n {
		v.e[i] /= o.e[i]
	}
	return v, nil
}

// DivScalar returns v with every component divided by s, or an
// error wrapping [ErrDivideByZero] if s is zero.
func (v Vector[T]) DivScalar(s T) (Vector[T], error) {
	if s == 0 {
		return Vector[T]{}, divErrorf("DivScalar", "scalar divisor is zero")
	}
	for i := range v.n {
		v.e[i] /= s
	}
	return v, nil
}

// ScalarDiv returns s / v, component-wise, or an error wrapping
// [ErrDivideByZero] if any component of v is zero.
func (v Vector[T]) ScalarDiv(s T) (Vector[T], error) {
	for i := range v.n {
		if v.e[i] == 0 {
			return Vector[T]{}, divErrorf("ScalarDiv", "divisor component %d is zero", i)
		}
	}
	for i := range v.n {
		v.e[i] = s / v.e[i]
	}
	return v, nil
}

// Negate returns -v.
func (v Vector[T]) Negate() Vector[T] {
	for i := range v.n {
		v.e[i] = -v.e[i]
	}
	return v
}

// SetAdd sets v to v + o and returns v for chaining.
func (v *Vector[T]) SetAdd(o Vector[T]) *Vector[T] {
	*v = v.Add(o)
	return v
}

// SetAddScalar sets v to v + s and returns v.
func (v *Vector[T]) SetAddScalar(s T) *Vector[T] {
	*v = v.AddScalar(s)
	return v
}

// SetSub sets v to v - o and returns v.
func (v *Vector[T]) SetSub(o Vector[T]) *Vector[T] {
	*v = v.Sub(o)
	return v
}

// SetSubScalar sets v to v - s and returns v.
func (v *Vector[T]) SetSubScalar(s T) *Vector[T] {
	*v = v.SubScalar(s)
	return v
}

// SetMul sets v to v * o and returns v.
func (v *Vector[T]) SetMul(o Vector[T]) *Vector[T] {
	*v = v.Mul(o)
	return v
}

// SetMulScalar sets v to v * s and returns v.
func (v *Vector[T]) SetMulScalar(s T) *Vector[T] {
	*v = v.MulScalar(s)
	return v
}

// SetDiv sets v to v / o and returns v. On error v is unchanged.
func (v *Vector[T]) SetDiv(o Vector[T]) (*Vector[T], error) {
	r, err := v.Div(o)
	if err != nil {
		return v, err
	}
	*v = r
	return v, nil
}

// SetDivScalar sets v to v / s and returns v. On error v is unchanged.
func (v *Vector[T]) SetDivScalar(s T) (*Vector[T], error) {
	r, err := v.DivScalar(s)
	if err != nil {
		return v, err
	}
	*v = r
	return v, nil
}

// Inc adds 1 to every component and returns v (prefix increment).
func (v *Vector[T]) Inc() *Vector[T] {
	return v.SetAddScalar(1)
}

// Dec subtracts 1 from every component and returns v (prefix decrement).
func (v *Vector[T]) Dec() *Vector[T] {
	return v.SetSubScalar(1)
}

// PostInc adds 1 to every component and returns the previous value.
func (v *Vector[T]) PostInc() Vector[T] {
	old := *v
	v.Inc()
	return old
}

// PostDec subtracts 1 from every component and returns the previous value.
func (v *Vector[T]) PostDec() Vector[T] {
	old := *v
	v.Dec()
	return old
}

// Equal reports whether v and o have the same length and exactly
// equal components.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if v.n != o.n {
		return false
	}
	for i := range v.n {
		if v.e[i] != o.e[i] {
			return false
		}
	}
	return true
}

// NotEqual is !v.Equal(o).
func (v Vector[T]) NotEqual(o Vector[T]) bool {
	return !v.Equal(o)
}

// IsApprox reports whether v and o have the same length and every
// pair of components differs by at most tol.
func (v Vector[T]) IsApprox(o Vector[T], tol float64) bool {
	if v.n != o.n {
		return false
	}
	for i := range v.n {
		if diff64(v.e[i], o.e[i]) > tol {
			return false
		}
	}
	return true
}

// IsZero reports whether every component is zero.
func (v Vector[T]) IsZero() bool {
	for i := range v.n {
		if v.e[i] != 0 {
			return false
		}
	}
	return true
}
