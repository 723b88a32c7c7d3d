// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/lamath/base/errors"
	"cogentcore.org/lamath/la"
	"github.com/google/uuid"
)

// ErrCycle is returned when adding a child would make a node its own ancestor.
var ErrCycle = errors.New("scene: node cycle")

// Node is an element of the scene graph. Its transform is relative to
// its parent, and the matrices are updated by [Node.UpdateWorldMatrix]
// and [Node.UpdateMVPMatrix].
type Node struct {

	// ID is a stable unique identifier.
	ID uuid.UUID

	// Name of the node, unique within a [Scene] by convention.
	Name string

	Transform Transform

	// Children of this node, whose transforms are relative to it.
	Children []*Node

	// Matrix is the local matrix of Transform.
	Matrix Mat4

	// WorldMatrix is the product of all ancestor matrices and Matrix.
	WorldMatrix Mat4

	// MVMatrix is view * world, transforming into camera coordinates.
	MVMatrix Mat4

	// MVPMatrix is projection * view * world, the full render matrix.
	MVPMatrix Mat4

	// NormMatrix is the normal matrix of MVMatrix.
	NormMatrix Mat3

	parent *Node
}

// NewNode returns a new node with the given name, a fresh ID and the
// identity transform.
func NewNode(name string) *Node {
	return &Node{
		ID:          uuid.New(),
		Name:        name,
		Transform:   NewTransform(),
		Matrix:      la.Identity4[float32](),
		WorldMatrix: la.Identity4[float32](),
	}
}

// Parent returns the parent of the node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild adds c as the last child of n. It returns an error if c
// already has a parent or if c is n or one of its ancestors.
func (n *Node) AddChild(c *Node) error {
	if c.parent != nil {
		return fmt.Errorf("scene: AddChild %q to %q: already a child of %q", c.Name, n.Name, c.parent.Name)
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return fmt.Errorf("scene: AddChild %q to %q: %w", c.Name, n.Name, ErrCycle)
		}
	}
	c.parent = n
	n.Children = append(n.Children, c)
	return nil
}

// Walk calls fn on n and then on its descendants, depth first.
// If fn returns false the children of that node are skipped.
func (n *Node) Walk(fn func(n *Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// UpdateMatrix updates the local Matrix from the Transform.
func (n *Node) UpdateMatrix() {
	n.Matrix = n.Transform.Matrix()
}

// UpdateWorldMatrix updates the local and world matrices of n and all
// of its descendants, given the world matrix of the parent.
func (n *Node) UpdateWorldMatrix(parWorld Mat4) {
	n.UpdateMatrix()
	n.WorldMatrix = parWorld.Mul(n.Matrix)
	for _, c := range n.Children {
		c.UpdateWorldMatrix(n.WorldMatrix)
	}
}

// UpdateMVPMatrix updates the model-view, model-view-projection and
// normal matrices from the camera view and projection matrices.
// It assumes WorldMatrix is current. When the model-view matrix has no
// normal matrix (e.g. a zero scale) NormMatrix is set to zero and the
// error wraps [la.ErrSingularMatrix]; the other matrices are still set.
func (n *Node) UpdateMVPMatrix(view, prjn Mat4) error {
	n.MVMatrix = view.Mul(n.WorldMatrix)
	n.MVPMatrix = prjn.Mul(n.MVMatrix)
	nm, err := NormalMatrix(n.MVMatrix)
	if err != nil {
		n.NormMatrix = la.NewMatrix[float32](3, 3)
		return fmt.Errorf("scene: node %q: %w", n.Name, err)
	}
	n.NormMatrix = nm
	return nil
}

// WorldPosition returns the position of the node in world coordinates.
func (n *Node) WorldPosition() Vec3 {
	return n.WorldMatrix.Col(3).XYZ()
}

// NormalMatrix returns the matrix that transforms normals under the
// 4x4 model-view matrix mv: the inverse transpose of its upper-left 3x3.
func NormalMatrix(mv Mat4) (Mat3, error) {
	sub, err := la.SubMatrix(mv, 3, 3)
	if err != nil {
		return Mat3{}, err
	}
	inv, err := la.Inverse(sub)
	if err != nil {
		return Mat3{}, err
	}
	return la.Transpose(inv), nil
}
