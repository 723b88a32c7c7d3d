// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the consumers of the la package used by a
// renderer: transforms, a node graph with world and model-view-projection
// matrices, a camera, and a cache that uploads matrices as shader uniforms.
package scene

import "cogentcore.org/lamath/la"

// Vec3 is the 3-component float32 vector used throughout the scene.
type Vec3 = la.Vector[float32]

// Mat4 is a 4x4 float32 matrix.
type Mat4 = la.Matrix[float32]

// Mat3 is a 3x3 float32 matrix.
type Mat3 = la.Matrix[float32]

// Transform is the position, rotation and scale of an element
// relative to its parent.
type Transform struct {

	// position of the center of the element (relative to parent)
	Position Vec3

	// rotation in degrees around the X, Y and Z axes, applied in that order
	Rotation Vec3

	// scale (relative to parent)
	Scale Vec3
}

// NewTransform returns the identity transform: at the origin,
// unrotated, with unit scale.
func NewTransform() Transform {
	return Transform{
		Position: la.Vec3[float32](0, 0, 0),
		Rotation: la.Vec3[float32](0, 0, 0),
		Scale:    la.Vec3[float32](1, 1, 1),
	}
}

// Defaults sets any unset (zero-length) field to its identity value.
func (tf *Transform) Defaults() {
	if tf.Position.Len() == 0 {
		tf.Position = la.Vec3[float32](0, 0, 0)
	}
	if tf.Rotation.Len() == 0 {
		tf.Rotation = la.Vec3[float32](0, 0, 0)
	}
	if tf.Scale.Len() == 0 {
		tf.Scale = la.Vec3[float32](1, 1, 1)
	}
}

// Matrix returns the local transform matrix, which scales, then
// rotates, then translates.
func (tf *Transform) Matrix() Mat4 {
	tf.Defaults()
	return la.Transformation(tf.Position, tf.Rotation, tf.Scale)
}

// MoveOnAxisAbs translates the position by dist along the given
// direction in absolute coordinates. A zero direction does nothing.
func (tf *Transform) MoveOnAxisAbs(x, y, z, dist float32) {
	tf.Defaults()
	tf.Position.SetAdd(la.Normalise(la.Vec3(x, y, z)).MulScalar(dist))
}

// MoveOnAxis translates the position by dist along the given direction
// in local coordinates, relative to the current rotation.
func (tf *Transform) MoveOnAxis(x, y, z, dist float32) {
	tf.Defaults()
	dir := la.TransformDirection(la.RotateV(tf.Rotation), la.Normalise(la.Vec3(x, y, z)))
	tf.Position.SetAdd(dir.MulScalar(dist))
}

// RotateEuler adds the given Euler angles in degrees to the rotation.
func (tf *Transform) RotateEuler(x, y, z float32) {
	tf.Defaults()
	tf.Rotation.SetAdd(la.Vec3(x, y, z))
}
