// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/lamath/base/errors"
	"cogentcore.org/lamath/la"
	"golang.org/x/sync/errgroup"
)

// Scene is a camera and a forest of root nodes.
type Scene struct {
	Name string

	Camera *Camera

	// Nodes are the root nodes; each is transformed relative to the world.
	Nodes []*Node
}

// New returns a new empty scene with a default camera.
func New(name string) *Scene {
	return &Scene{Name: name, Camera: NewCamera()}
}

// ErrAttached is returned when adding a root node that already has a
// parent or is already a root of the scene.
var ErrAttached = errors.New("scene: node already attached")

// Add adds root nodes to the scene. Each root is updated by its own
// goroutine, so the roots must be distinct trees: if any node already
// has a parent or is already a root, Add returns an error wrapping
// [ErrAttached] and adds nothing.
func (sc *Scene) Add(nodes ...*Node) error {
	for i, n := range nodes {
		if p := n.Parent(); p != nil {
			return fmt.Errorf("scene: Add %q: child of %q: %w", n.Name, p.Name, ErrAttached)
		}
		if slices.Contains(sc.Nodes, n) || slices.Contains(nodes[:i], n) {
			return fmt.Errorf("scene: Add %q: already a root: %w", n.Name, ErrAttached)
		}
	}
	sc.Nodes = append(sc.Nodes, nodes...)
	return nil
}

// Walk calls [Node.Walk] with fn on every root node in order.
func (sc *Scene) Walk(fn func(n *Node) bool) {
	for _, n := range sc.Nodes {
		n.Walk(fn)
	}
}

// FindByName returns the first node with the given name, or nil.
func (sc *Scene) FindByName(name string) *Node {
	var found *Node
	sc.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// NumNodes returns the total number of nodes in the scene.
func (sc *Scene) NumNodes() int {
	num := 0
	sc.Walk(func(n *Node) bool {
		num++
		return true
	})
	return num
}

// Update updates the camera and then the world, model-view,
// model-view-projection and normal matrices of every node.
func (sc *Scene) Update(ctx context.Context) error {
	if err := sc.Camera.UpdateMatrix(); err != nil {
		return err
	}
	if err := UpdateWorldMatrices(ctx, sc.Nodes...); err != nil {
		return err
	}
	view, prjn := sc.Camera.Matrices()
	err := UpdateMVPMatrices(ctx, view, prjn, sc.Nodes...)
	if err == nil {
		slog.Debug("scene updated", "scene", sc.Name, "nodes", sc.NumNodes())
	}
	return err
}

// UpdateWorldMatrices updates the world matrices of the given root nodes
// and their descendants, one goroutine per root. Each subtree only writes
// its own nodes, so the roots must be distinct trees.
func UpdateWorldMatrices(ctx context.Context, roots ...*Node) error {
	ident := la.Identity4[float32]()
	return eachRoot(ctx, roots, func(root *Node) error {
		root.UpdateWorldMatrix(ident)
		return nil
	})
}

// UpdateMVPMatrices updates the model-view-projection and normal matrices
// of the given root nodes and their descendants, one goroutine per root.
// A node without a normal matrix, such as one scaled to zero to hide it,
// is logged and left with a zero NormMatrix; the other nodes still update.
func UpdateMVPMatrices(ctx context.Context, view, prjn Mat4, roots ...*Node) error {
	return eachRoot(ctx, roots, func(root *Node) error {
		root.Walk(func(n *Node) bool {
			errors.Log(n.UpdateMVPMatrix(view, prjn))
			return true
		})
		return nil
	})
}

func eachRoot(ctx context.Context, roots []*Node, fn func(root *Node) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(root)
		})
	}
	return g.Wait()
}
