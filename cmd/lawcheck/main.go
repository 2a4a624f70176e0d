// Command lawcheck runs the law suites of the built-in optics and reports
// a verdict per law.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lawcheck:", err)
		os.Exit(1)
	}
}
