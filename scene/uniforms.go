// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"cogentcore.org/lamath/la"
	"github.com/cespare/xxhash/v2"
)

// UniformSink receives shader uniform uploads, in the form of the
// OpenGL glUniform* calls. The data slices are column-major and are
// only valid for the duration of the call.
type UniformSink interface {
	UniformMatrix4fv(name string, data []float32)
	UniformMatrix3fv(name string, data []float32)
	Uniform3fv(name string, data []float32)
}

// Uniform names used by [Uniforms.UploadNode] and [Uniforms.UploadCamera].
const (
	UniformMVMatrix   = "MVMatrix"
	UniformMVPMatrix  = "MVPMatrix"
	UniformNormMatrix = "NormMatrix"
	UniformView       = "ViewMatrix"
	UniformPrjn       = "PrjnMatrix"
	UniformCameraPos  = "CameraPos"
)

// Uniforms uploads values to a [UniformSink], skipping any upload whose
// data is identical to the last one sent under the same name.
// It is safe for concurrent use.
type Uniforms struct {
	Sink UniformSink

	// Sent is the number of uploads passed on to Sink.
	Sent int

	// Skipped is the number of redundant uploads not passed on.
	Skipped int

	mu     sync.Mutex
	hashes map[string]uint64
}

// NewUniforms returns a new uniform cache uploading to sink.
func NewUniforms(sink UniformSink) *Uniforms {
	return &Uniforms{Sink: sink, hashes: map[string]uint64{}}
}

// Reset forgets all previous uploads, so the next ones are all sent,
// e.g. after the shader program changes.
func (u *Uniforms) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	clear(u.hashes)
}

// SetMatrix4 uploads the 4x4 matrix m under name, returning whether
// it was sent. It panics with a [la.DimensionError] if m is not 4x4.
func (u *Uniforms) SetMatrix4(name string, m Mat4) bool {
	mustShape("SetMatrix4", m, 4)
	return u.upload(name, m.Data(), u.Sink.UniformMatrix4fv)
}

// SetMatrix3 uploads the 3x3 matrix m under name, returning whether
// it was sent. It panics with a [la.DimensionError] if m is not 3x3.
func (u *Uniforms) SetMatrix3(name string, m Mat3) bool {
	mustShape("SetMatrix3", m, 3)
	return u.upload(name, m.Data(), u.Sink.UniformMatrix3fv)
}

// SetVector3 uploads the 3-component vector v under name, returning
// whether it was sent.
func (u *Uniforms) SetVector3(name string, v Vec3) bool {
	if v.Len() != 3 {
		panic(&la.DimensionError{Op: "SetVector3", Msg: "vector length must be 3"})
	}
	return u.upload(name, v.Values(), u.Sink.Uniform3fv)
}

// UploadNode uploads the model-view, model-view-projection and
// normal matrices of n, returning the number sent. The matrices must
// have been computed by [Node.UpdateMVPMatrix].
func (u *Uniforms) UploadNode(n *Node) int {
	sent := 0
	for _, ok := range []bool{
		u.SetMatrix4(UniformMVMatrix, n.MVMatrix),
		u.SetMatrix4(UniformMVPMatrix, n.MVPMatrix),
		u.SetMatrix3(UniformNormMatrix, n.NormMatrix),
	} {
		if ok {
			sent++
		}
	}
	return sent
}

// UploadCamera uploads the view and projection matrices and the
// position of the camera, returning the number sent.
func (u *Uniforms) UploadCamera(cm *Camera) int {
	view, prjn := cm.Matrices()
	cm.mu.RLock()
	pos := cm.Position
	cm.mu.RUnlock()
	sent := 0
	for _, ok := range []bool{
		u.SetMatrix4(UniformView, view),
		u.SetMatrix4(UniformPrjn, prjn),
		u.SetVector3(UniformCameraPos, pos),
	} {
		if ok {
			sent++
		}
	}
	return sent
}

func (u *Uniforms) upload(name string, data []float32, send func(name string, data []float32)) bool {
	h := hashFloats(data)
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.hashes == nil {
		u.hashes = map[string]uint64{}
	}
	if last, ok := u.hashes[name]; ok && last == h {
		u.Skipped++
		slog.Debug("uniform unchanged", "name", name)
		return false
	}
	u.hashes[name] = h
	u.Sent++
	send(name, data)
	return true
}

func mustShape(op string, m Mat4, n int) {
	if m.Rows() != n || m.Cols() != n {
		panic(&la.DimensionError{Op: op, Msg: fmt.Sprintf("%dx%d matrix, want %dx%d", m.Rows(), m.Cols(), n, n)})
	}
}

// hashFloats returns the xxhash of the little-endian bytes of data.
func hashFloats(data []float32) uint64 {
	d := xxhash.New()
	var b [4]byte
	for _, x := range data {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(x))
		d.Write(b[:])
	}
	return d.Sum64()
}
