// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors is the error package of lamath: it re-exports the
// parts of the standard library errors package the module uses and
// adds helpers for logging and panicking on errors.
package errors

import (
	"log/slog"
)

// Log logs err at the error level if it is non-nil, and returns it,
// so a failure that is not fatal can be reported in place:
//
//	errors.Log(cam.LookAtOrigin())
//	if errors.Log(err) != nil {
//		return
//	}
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Must1 returns v, or panics with err if it is non-nil. It is for
// results that can only fail on a programming error:
//
//	m := errors.Must1(la.FromRows(rows...))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
