// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneio reads and writes scene description files in TOML
// or YAML, and watches them for changes.
package sceneio

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/lamath/base/errors"
	"cogentcore.org/lamath/la"
	"cogentcore.org/lamath/scene"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownParent is returned when a node names a parent that does not exist.
	ErrUnknownParent = errors.New("sceneio: unknown parent")

	// ErrDuplicateNode is returned when two nodes have the same name.
	ErrDuplicateNode = errors.New("sceneio: duplicate node name")

	// ErrFormat is returned for a file extension that is not a known format.
	ErrFormat = errors.New("sceneio: unknown format")
)

// Format is the encoding of a scene file.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromPath returns the format of the file at the given path,
// based on its extension: .toml, .yaml or .yml.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, path)
}

// File is the contents of a scene file.
type File struct {
	Name string `toml:"name" yaml:"name"`

	Camera *CameraConfig `toml:"camera,omitempty" yaml:"camera,omitempty"`

	// Nodes in any order; a node is a root if it has no parent.
	Nodes []NodeConfig `toml:"nodes" yaml:"nodes"`
}

// CameraConfig describes the camera. Unset fields keep the
// [scene.Camera] defaults.
type CameraConfig struct {
	Position []float32 `toml:"position,omitempty" yaml:"position,omitempty"`
	Target   []float32 `toml:"target,omitempty" yaml:"target,omitempty"`
	Up       []float32 `toml:"up,omitempty" yaml:"up,omitempty"`
	FOV      float32   `toml:"fov,omitempty" yaml:"fov,omitempty"`
	Aspect   float32   `toml:"aspect,omitempty" yaml:"aspect,omitempty"`
	Near     float32   `toml:"near,omitempty" yaml:"near,omitempty"`
	Far      float32   `toml:"far,omitempty" yaml:"far,omitempty"`
	Ortho    bool      `toml:"ortho,omitempty" yaml:"ortho,omitempty"`
}

// NodeConfig describes one node. Position and Rotation default to zero
// and Scale to 1,1,1. Rotation is in degrees.
type NodeConfig struct {
	Name     string    `toml:"name" yaml:"name"`
	Parent   string    `toml:"parent,omitempty" yaml:"parent,omitempty"`
	Position []float32 `toml:"position,omitempty" yaml:"position,omitempty"`
	Rotation []float32 `toml:"rotation,omitempty" yaml:"rotation,omitempty"`
	Scale    []float32 `toml:"scale,omitempty" yaml:"scale,omitempty"`
}

// Decode reads a scene file in the given format from r.
// Unknown fields are an error.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return &f, nil
}

// Encode writes f to w in the given format.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(f)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

// Open reads the scene file at the given path, in the format given by
// its extension.
func Open(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(bytes.NewReader(b), format)
	if err != nil {
		return nil, fmt.Errorf("sceneio: %s: %w", path, err)
	}
	return f, nil
}

// Save writes f to the given path, in the format given by its extension.
func Save(f *File, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := Encode(&b, f, format); err != nil {
		return err
	}
	return os.WriteFile(path, b.Bytes(), 0666)
}

// Load opens the scene file at the given path and builds the scene.
func Load(path string) (*scene.Scene, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	sc, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("sceneio: %s: %w", path, err)
	}
	slog.Debug("loaded scene", "path", path, "name", sc.Name, "nodes", sc.NumNodes())
	return sc, nil
}

// Build returns the scene described by the file. Roots are added in
// file order, as are the children of each node. It returns an error
// for duplicate or empty names, unknown parents, parent cycles, vectors
// that do not have 3 components, and camera settings that have no
// projection.
func (f *File) Build() (*scene.Scene, error) {
	sc := scene.New(f.Name)
	if f.Camera != nil {
		if err := f.Camera.apply(sc.Camera); err != nil {
			return nil, err
		}
	}
	nodes := make(map[string]*scene.Node, len(f.Nodes))
	ordered := make([]*scene.Node, len(f.Nodes))
	for i, ns := range f.Nodes {
		if ns.Name == "" {
			return nil, fmt.Errorf("node %d has no name", i)
		}
		if _, has := nodes[ns.Name]; has {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, ns.Name)
		}
		n := scene.NewNode(ns.Name)
		if err := ns.apply(&n.Transform); err != nil {
			return nil, fmt.Errorf("node %q: %w", ns.Name, err)
		}
		nodes[ns.Name] = n
		ordered[i] = n
	}
	for i, ns := range f.Nodes {
		n := ordered[i]
		if ns.Parent == "" {
			if err := sc.Add(n); err != nil {
				return nil, err
			}
			continue
		}
		par, ok := nodes[ns.Parent]
		if !ok {
			return nil, fmt.Errorf("node %q: %w %q", ns.Name, ErrUnknownParent, ns.Parent)
		}
		if err := par.AddChild(n); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func (cs *CameraConfig) apply(cm *scene.Camera) error {
	if cs.FOV != 0 {
		cm.FOV = cs.FOV
	}
	if cs.Aspect != 0 {
		cm.Aspect = cs.Aspect
	}
	if cs.Near != 0 {
		cm.Near = cs.Near
	}
	if cs.Far != 0 {
		cm.Far = cs.Far
	}
	cm.Ortho = cs.Ortho
	target, up := cm.Target, cm.UpDir
	var err error
	if cm.Position, err = vec3(cm.Position, cs.Position, "camera position"); err != nil {
		return err
	}
	if target, err = vec3(target, cs.Target, "camera target"); err != nil {
		return err
	}
	if up, err = vec3(up, cs.Up, "camera up"); err != nil {
		return err
	}
	return cm.LookAt(target, up)
}

func (ns *NodeConfig) apply(tf *scene.Transform) error {
	var err error
	if tf.Position, err = vec3(tf.Position, ns.Position, "position"); err != nil {
		return err
	}
	if tf.Rotation, err = vec3(tf.Rotation, ns.Rotation, "rotation"); err != nil {
		return err
	}
	tf.Scale, err = vec3(tf.Scale, ns.Scale, "scale")
	return err
}

// vec3 returns the vector of vals, or def if vals is empty.
func vec3(def scene.Vec3, vals []float32, what string) (scene.Vec3, error) {
	if len(vals) == 0 {
		return def, nil
	}
	if len(vals) != 3 {
		return def, fmt.Errorf("%s has %d values, want 3: %w", what, len(vals), la.ErrDimensionMismatch)
	}
	return la.Vec3(vals[0], vals[1], vals[2]), nil
}

// FromScene returns the file describing sc, the inverse of [File.Build].
func FromScene(sc *scene.Scene) *File {
	f := &File{Name: sc.Name}
	cm := sc.Camera
	f.Camera = &CameraConfig{
		Position: cm.Position.Values(),
		Target:   cm.Target.Values(),
		Up:       cm.UpDir.Values(),
		FOV:      cm.FOV,
		Aspect:   cm.Aspect,
		Near:     cm.Near,
		Far:      cm.Far,
		Ortho:    cm.Ortho,
	}
	sc.Walk(func(n *scene.Node) bool {
		ns := NodeConfig{
			Name:     n.Name,
			Position: n.Transform.Position.Values(),
			Rotation: n.Transform.Rotation.Values(),
			Scale:    n.Transform.Scale.Values(),
		}
		if p := n.Parent(); p != nil {
			ns.Parent = p.Name
		}
		f.Nodes = append(f.Nodes, ns)
		return true
	})
	return f
}
