// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/lamath/base/tolassert"
	"cogentcore.org/lamath/la"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChild(t *testing.T) {
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	assert.NotEqual(t, a.ID, b.ID)

	require.NoError(t, a.AddChild(b))
	require.NoError(t, b.AddChild(c))
	assert.Equal(t, a, b.Parent())
	assert.Nil(t, a.Parent())

	assert.ErrorIs(t, c.AddChild(a), ErrCycle)
	assert.ErrorIs(t, a.AddChild(a), ErrCycle)
	err := a.AddChild(c)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCycle)

	var names []string
	a.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, names)

	names = nil
	a.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n != b
	})
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestWorldMatrix(t *testing.T) {
	par := NewNode("par")
	par.Transform.Rotation = la.Vec3[float32](0, 90, 0)
	par.Transform.Position = la.Vec3[float32](0, 1, 0)
	child := NewNode("child")
	child.Transform.Position = la.Vec3[float32](1, 0, 0)
	require.NoError(t, par.AddChild(child))

	par.UpdateWorldMatrix(la.Identity4[float32]())
	assert.Equal(t, la.Vec3[float32](0, 1, 0), par.WorldPosition())
	assertVectorTol(t, la.Vec3[float32](0, 1, -1), child.WorldPosition())
	assert.Equal(t, par.WorldMatrix.Mul(child.Matrix), child.WorldMatrix)
}

func TestNormalMatrix(t *testing.T) {
	n := NewNode("n")
	n.Transform.Scale = la.Vec3[float32](2, 2, 2)
	n.UpdateWorldMatrix(la.Identity4[float32]())
	ident := la.Identity4[float32]()
	require.NoError(t, n.UpdateMVPMatrix(ident, ident))
	assertMatrixTol(t, standardTol, la.Identity3[float32]().MulScalar(0.5), n.NormMatrix)

	mv := la.Transformation(la.Vec3[float32](1, 2, 3), la.Vec3[float32](20, -30, 40), la.Vec3[float32](1, 2, 0.5))
	nm, err := NormalMatrix(mv)
	require.NoError(t, err)
	mmv := mgl32.Mat4{}
	copy(mmv[:], mv.Data())
	want := mmv.Mat3().Inv().Transpose()
	tolassert.EqualTolSlice(t, want[:], nm.Data(), 1e-4)

	n.Transform.Scale = la.Vec3[float32](0, 1, 1)
	n.UpdateWorldMatrix(la.Identity4[float32]())
	assert.ErrorIs(t, n.UpdateMVPMatrix(ident, ident), la.ErrSingularMatrix)
	assert.Equal(t, la.NewMatrix[float32](3, 3), n.NormMatrix)
	assert.Equal(t, n.WorldMatrix, n.MVPMatrix)
}
