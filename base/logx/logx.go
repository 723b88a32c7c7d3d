// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger for command line
// tools, with user-selected verbosity and colored level names.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set from command line flags through [LevelFromFlags]. The default
// is [slog.LevelInfo], or [slog.LevelDebug] / [slog.LevelWarn] in debug
// and release builds.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel],
// with the level names colored when w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			if lvl, ok := a.Value.Any().(slog.Level); ok {
				a.Value = slog.StringValue(LevelString(out, lvl))
			}
			return a
		},
	})
}

// LevelString returns the name of the given level styled for out:
// errors red, warnings yellow, debug messages faint.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lvl < slog.LevelInfo:
		s = s.Faint()
	}
	return s.String()
}

// SetDefaultLogger sets the default [slog] logger to one writing to
// stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
