package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/doodlesbykumbi/nodem-in-go"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

// mustLoad resolves the driver or exits. The locator has already written
// its diagnostics by then.
func mustLoad() mumps.Module {
	m, err := nodem.Load()
	if err != nil {
		os.Exit(1)
	}
	return m
}

func printResult(label string, res mumps.Result) {
	out, err := json.Marshal(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: failed to encode result: %v\n", label, err)
		return
	}
	fmt.Printf("%s: %s\n", label, out)
}
