//go:build gtm && cgo

// Command mumps-plugin is the release build of the GT.M driver, built with
//
//	go build -tags gtm -buildmode=plugin -o build/Release/mumps.so ./cmd/mumps-plugin
//
// The locator looks up Module in the resulting shared object.
package main

import (
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps/gtm"
)

var Module mumps.Module = gtm.New()

func main() {}
