package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// sessionKeyCmd represents the session-key command
var sessionKeyCmd = &cobra.Command{
	Use:   "session-key",
	Short: "Manage identity session keys",
	Long:  `Manage identity session keys`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'session-key' requires a subcommand generate")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(sessionKeyCmd)
}
