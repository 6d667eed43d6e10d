package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the driver and database version",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printVersion(os.Stdout, mustLoad().NewGtm()); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersion opens db, prints its version and closes it again on every
// path past a successful open.
func printVersion(w io.Writer, db mumps.Gtm) error {
	res, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if res.Failed() {
		return fmt.Errorf("failed to open database: %s", res.ErrorMessage)
	}
	defer func() { _, _ = db.Close() }()

	res, err = db.Version()
	if err != nil {
		return fmt.Errorf("failed to read version: %w", err)
	}
	_, err = fmt.Fprintln(w, res.Result)
	return err
}
