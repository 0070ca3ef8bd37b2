// SPDX-License-Identifier: MIT

// Command treetrip solves trip-planning instances from the command line and
// generates synthetic ones.
//
//	treetrip solve --input plan.yaml
//	treetrip gen --shape straight --n 1000 --profile elevated --k 500 --solve
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "treetrip:", err)
		os.Exit(1)
	}
}
