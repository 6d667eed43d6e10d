package main

import (
	"os"

	"github.com/spf13/cobra"

	// Registers the native driver as the fallback candidate when built with -tags gtm.
	_ "github.com/doodlesbykumbi/nodem-in-go/pkg/mumps/gtm"
)

var rootCmd = &cobra.Command{
	Use:   "nodemctl",
	Short: "Locate, check and exercise the GT.M driver",
	Long: `nodemctl locates the GT.M driver the same way programs using nodem do,
and runs a few operations against it.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
