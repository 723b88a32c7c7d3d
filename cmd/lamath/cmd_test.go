// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/lamath/base/logx"
	"cogentcore.org/lamath/la"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDet(t *testing.T) {
	out, err := run(t, "det", "[1 2; 3 4]")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)

	_, err = run(t, "det", "[1 2 3; 4 5 6]")
	assert.ErrorIs(t, err, la.ErrDimensionMismatch)
	_, err = run(t, "det", "[1 x]")
	assert.Error(t, err)
	_, err = run(t, "det")
	assert.Error(t, err)
}

func TestInverse(t *testing.T) {
	out, err := run(t, "inverse", "[2 0; 0 4]")
	require.NoError(t, err)
	assert.Equal(t, "[0.5 0; 0 0.25]\n", out)

	_, err = run(t, "-q", "inverse", "[1 2; 2 4]")
	assert.ErrorIs(t, err, la.ErrSingularMatrix)
	assert.Equal(t, slog.LevelError, logx.UserLevel)
}

func TestEvalConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "box.yaml")
	require.NoError(t, os.WriteFile(in, []byte(`
name: box
nodes:
  - name: lid
    parent: box
    position: [0, 1, 0]
  - name: box
    position: [2, 0, 0]
`), 0666))

	out, err := run(t, "eval", in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "scene box: 2 nodes\n"), out)
	assert.Contains(t, out, "lid: position (2, 1, 0)")

	toml := filepath.Join(dir, "box.toml")
	_, err = run(t, "convert", in, toml)
	require.NoError(t, err)
	out2, err := run(t, "eval", toml)
	require.NoError(t, err)
	assert.Equal(t, out, out2)

	_, err = run(t, "eval", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = run(t, "convert", in, filepath.Join(dir, "box.json"))
	assert.Error(t, err)
}
