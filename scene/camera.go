// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"sync"

	"cogentcore.org/lamath/base/errors"
	"cogentcore.org/lamath/la"
	"github.com/chewxy/math32"
)

// Camera defines the properties of the camera.
type Camera struct {

	// position of the camera (eye point)
	Position Vec3

	// target location for the camera, where it is pointing at; defaults
	// to the origin, moves with panning, and is reset by [Camera.LookAt]
	Target Vec3

	// up direction for the camera; defaults to the positive Y axis
	UpDir Vec3

	// Ortho makes this an orthographic camera instead of a perspective one,
	// viewing the volume between Near and Far (so you probably want to
	// decrease Far).
	Ortho bool

	// field of view in degrees
	FOV float32

	// aspect ratio (width/height)
	Aspect float32

	// near plane z coordinate
	Near float32

	// far plane z coordinate
	Far float32

	// ViewMatrix transforms world coordinates into camera coordinates.
	ViewMatrix Mat4

	// PrjnMatrix is the perspective or orthographic projection.
	PrjnMatrix Mat4

	// InvPrjnMatrix is the inverse of PrjnMatrix.
	InvPrjnMatrix Mat4

	mu sync.RWMutex
}

// NewCamera returns a camera with default settings, looking at the
// origin from (0, 0, 10).
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera to look at the origin from 0,0,10,
// with the Y axis up.
func (cm *Camera) DefaultPose() {
	cm.mu.Lock()
	cm.Position = la.Vec3[float32](0, 0, 10)
	cm.mu.Unlock()
	errors.Log(cm.LookAtOrigin())
}

// UpdateMatrix updates the view and projection matrices. It returns an
// error if the projection parameters divide by zero (e.g. Near == Far).
func (cm *Camera) UpdateMatrix() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.ViewMatrix = la.LookAt(cm.Position, cm.Target, cm.UpDir)
	var prjn Mat4
	var err error
	if cm.Ortho {
		height := 2 * cm.Far * math32.Tan(la.DegToRad(cm.FOV*0.5))
		width := cm.Aspect * height
		prjn, err = la.Orthographic(-width/2, width/2, -height/2, height/2, cm.Near, cm.Far)
	} else {
		prjn, err = la.Perspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	}
	if err != nil {
		return fmt.Errorf("scene: camera projection: %w", err)
	}
	inv, err := la.Inverse(prjn)
	if err != nil {
		return fmt.Errorf("scene: camera projection: %w", err)
	}
	cm.PrjnMatrix = prjn
	cm.InvPrjnMatrix = inv
	return nil
}

// Matrices returns the current view and projection matrices.
func (cm *Camera) Matrices() (view, prjn Mat4) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.ViewMatrix, cm.PrjnMatrix
}

// ViewProjection returns projection * view.
func (cm *Camera) ViewProjection() Mat4 {
	view, prjn := cm.Matrices()
	return prjn.Mul(view)
}

// LookAt points the camera at the given target location, using the
// given up direction (the Y axis if zero), and sets the Target and
// UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir Vec3) error {
	cm.mu.Lock()
	cm.Target = target
	if upDir.Len() == 0 || upDir.IsZero() {
		upDir = la.Vec3[float32](0, 1, 0)
	}
	cm.UpDir = upDir
	cm.mu.Unlock()
	return cm.UpdateMatrix()
}

// LookAtOrigin points the camera at the origin with the Y axis up.
func (cm *Camera) LookAtOrigin() error {
	return cm.LookAt(la.Vec3[float32](0, 0, 0), la.Vec3[float32](0, 1, 0))
}

// LookAtTarget points the camera at the current target using the
// current up direction.
func (cm *Camera) LookAtTarget() error {
	cm.mu.RLock()
	target, up := cm.Target, cm.UpDir
	cm.mu.RUnlock()
	return cm.LookAt(target, up)
}

// ViewVector is the vector from the target to the camera position.
func (cm *Camera) ViewVector() Vec3 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.Position.Sub(cm.Target)
}

// ViewMainAxis returns the dimension (0, 1 or 2) along which the view
// vector is largest, along with the sign of that axis.
func (cm *Camera) ViewMainAxis() (dim int, sign float32) {
	vv := cm.ViewVector()
	ax, ay, az := math32.Abs(vv.X()), math32.Abs(vv.Y()), math32.Abs(vv.Z())
	switch {
	case ax > ay && ax > az:
		dim = 0
	case ay > ax && ay > az:
		dim = 1
	default:
		dim = 2
	}
	sign = 1
	if vv.At(dim) < 0 {
		sign = -1
	}
	return
}

// PanAxis moves the camera and target along the world X and Y axes.
func (cm *Camera) PanAxis(delX, delY float32) error {
	cm.mu.Lock()
	td := la.Vec3(-delX, -delY, 0)
	cm.Position.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.mu.Unlock()
	return cm.UpdateMatrix()
}

// Pan moves the camera and target along the given 2D axes (left/right,
// up/down) in the plane of the current view.
func (cm *Camera) Pan(delX, delY float32) error {
	cm.mu.Lock()
	fwd := la.Normalise(cm.Target.Sub(cm.Position))
	right := la.Normalise(la.Cross(fwd, cm.UpDir))
	up := la.Cross(right, fwd)
	td := right.MulScalar(-delX).Add(up.MulScalar(-delY))
	cm.Position.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.mu.Unlock()
	return cm.UpdateMatrix()
}

// Zoom moves the camera along the view axis by the given fraction of
// its distance to the target: positive is further away. Zooming in
// closer than distance 1 pushes the target back too.
func (cm *Camera) Zoom(zoomPct float32) error {
	ctaxis := cm.ViewVector()
	cm.mu.Lock()
	if ctaxis.IsZero() {
		ctaxis = la.Vec3[float32](0, 0, 1)
	}
	dist := la.Magnitude(ctaxis)
	del := ctaxis.MulScalar(zoomPct)
	cm.Position.SetAdd(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target.SetAdd(del)
	}
	cm.mu.Unlock()
	return cm.UpdateMatrix()
}
