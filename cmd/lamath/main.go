// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lamath evaluates scene files and does matrix arithmetic
// on the command line.
package main

import (
	"os"

	"cogentcore.org/lamath/base/errors"
)

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}
