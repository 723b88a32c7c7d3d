// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/lamath/base/errors"
	"cogentcore.org/lamath/base/logx"
	"cogentcore.org/lamath/la"
	"cogentcore.org/lamath/scene"
	"cogentcore.org/lamath/scene/sceneio"
	"github.com/spf13/cobra"
)

// Config has the flags shared by all commands.
type Config struct {

	// Verbose shows info messages.
	Verbose bool

	// VeryVerbose shows debug messages.
	VeryVerbose bool

	// Quiet only shows errors.
	Quiet bool
}

func newRootCmd() *cobra.Command {
	c := &Config{}
	root := &cobra.Command{
		Use:           "lamath",
		Short:         "Evaluate scene files and do matrix arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&c.VeryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(
		&cobra.Command{
			Use:   "eval <file>",
			Short: "Print the world and model-view-projection matrices of every node in a scene file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return Eval(cmd.Context(), cmd.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:   "watch <file>",
			Short: "Evaluate a scene file every time it changes, until interrupted",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return Watch(ctx, cmd.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:   "convert <in> <out>",
			Short: "Convert a scene file between TOML and YAML",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return Convert(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:     "det <matrix>",
			Short:   "Print the determinant of a matrix such as \"[1 2; 3 4]\"",
			Args:    cobra.ExactArgs(1),
			Example: `  lamath det "[1 2; 3 4]"`,
			RunE: func(cmd *cobra.Command, args []string) error {
				return Det(cmd.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:   "inverse <matrix>",
			Short: "Print the inverse of a matrix such as \"[1 2; 3 4]\"",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return Inverse(cmd.OutOrStdout(), args[0])
			},
		},
	)
	return root
}

// Eval loads the scene file at path, updates it, and prints its nodes.
func Eval(ctx context.Context, w io.Writer, path string) error {
	sc, err := sceneio.Load(path)
	if err != nil {
		return err
	}
	return printScene(ctx, w, sc)
}

func printScene(ctx context.Context, w io.Writer, sc *scene.Scene) error {
	if err := sc.Update(ctx); err != nil {
		return fmt.Errorf("eval %s: %w", sc.Name, err)
	}
	fmt.Fprintf(w, "scene %s: %d nodes\n", sc.Name, sc.NumNodes())
	fmt.Fprintf(w, "view %v\n", sc.Camera.ViewMatrix)
	fmt.Fprintf(w, "projection %v\n", sc.Camera.PrjnMatrix)
	sc.Walk(func(n *scene.Node) bool {
		fmt.Fprintf(w, "%s: position %v world %v\n", n.Name, n.WorldPosition(), n.WorldMatrix)
		fmt.Fprintf(w, "%s: mvp %v\n", n.Name, n.MVPMatrix)
		return true
	})
	return nil
}

// Watch evaluates the scene file at path every time it changes,
// until ctx is done. Errors in the file are logged, not returned.
func Watch(ctx context.Context, w io.Writer, path string) error {
	slog.Info("watching", "path", path)
	return sceneio.Watch(ctx, path, func(sc *scene.Scene, err error) {
		if errors.Log(err) != nil {
			return
		}
		errors.Log(printScene(ctx, w, sc))
	})
}

// Convert rewrites the scene file in to out, in the format given by
// the extension of out.
func Convert(in, out string) error {
	f, err := sceneio.Open(in)
	if err != nil {
		return err
	}
	sc, err := f.Build()
	if err != nil {
		return fmt.Errorf("convert %s: %w", in, err)
	}
	if err := sceneio.Save(sceneio.FromScene(sc), out); err != nil {
		return fmt.Errorf("convert %s: %w", in, err)
	}
	slog.Info("converted", "in", in, "out", out)
	return nil
}

// Det prints the determinant of the matrix written as str.
func Det(w io.Writer, str string) error {
	m, err := la.ParseMatrix[float64](str)
	if err != nil {
		return err
	}
	if !m.IsSquare() {
		return fmt.Errorf("det: %dx%d matrix is not square: %w", m.Rows(), m.Cols(), la.ErrDimensionMismatch)
	}
	fmt.Fprintln(w, la.Determinant(m))
	return nil
}

// Inverse prints the inverse of the matrix written as str.
func Inverse(w io.Writer, str string) error {
	m, err := la.ParseMatrix[float64](str)
	if err != nil {
		return err
	}
	if !m.IsSquare() {
		return fmt.Errorf("inverse: %dx%d matrix is not square: %w", m.Rows(), m.Cols(), la.ErrDimensionMismatch)
	}
	inv, err := la.Inverse(m)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, inv)
	return nil
}
