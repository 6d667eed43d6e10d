//go:build !(gtm && cgo)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "mumps-plugin must be built with -tags gtm -buildmode=plugin")
	os.Exit(1)
}
