// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "errors"

// New returns an error with the given text. Each call returns a
// distinct value, so it is used for sentinel errors.
func New(text string) error { return errors.New(text) }

// Is reports whether any error in the tree of err matches target.
func Is(err, target error) bool { return errors.Is(err, target) }
