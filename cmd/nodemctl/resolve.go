package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/config"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/locator"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/logging"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the driver and report which candidate loaded",
	Long: `Resolve the driver the way nodem.Load does and print the candidate that
provided it.

The release artifact is tried first, then the driver registered under the
fallback name. When both fail the fallback error is printed with its stack
trace and the command exits with status 1.

Example:
  nodemctl resolve
  NODEM_RELEASE_PATH=/opt/nodem/mumps.so nodemctl resolve`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		l := locator.Default(cfg, logging.Default(cfg.LogLevel))

		name, _, err := l.ResolveNamed()
		if err != nil {
			os.Exit(1)
		}

		switch name {
		case "release":
			fmt.Printf("Loaded release driver from %s\n", cfg.ReleasePath)
		default:
			fmt.Printf("Loaded %s driver %q\n", name, cfg.Fallback)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
