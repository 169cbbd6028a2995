// SPDX-License-Identifier: MIT

// Command lvalgebra evaluates matrix, scalar and graph queries over workload
// documents.
//
//	lvalgebra matrix det work.yaml --name a
//	lvalgebra scalar sqrt -- -4
//	lvalgebra graph cycles work.yaml --name g --vertex A
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
