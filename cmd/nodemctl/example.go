package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/identity"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

// exampleCmd represents the example command
var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Open the database, log in and close it again",
	Long: `Open the database, log in through the identity subsystem with a fresh
session key, and close the database. Each result is printed as JSON.

Example:
  nodemctl example --uid demo --pass1 secret`,
	Run: func(cmd *cobra.Command, args []string) {
		uid, _ := cmd.Flags().GetString("uid")
		pass1, _ := cmd.Flags().GetString("pass1")
		pass2, _ := cmd.Flags().GetString("pass2")

		if err := runExample(cmd.Context(), mustLoad(), uid, pass1, pass2); err != nil {
			fmt.Fprintf(os.Stderr, "Example failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().String("uid", "", "User identifier")
	exampleCmd.Flags().String("pass1", "", "Primary credential")
	exampleCmd.Flags().String("pass2", "", "Secondary credential")
	_ = exampleCmd.MarkFlagRequired("uid")
}

func runExample(ctx context.Context, m mumps.Module, uid, pass1, pass2 string) error {
	db := m.NewGtm()

	res, err := db.Open()
	if err != nil {
		return err
	}
	printResult("open", res)
	if res.Failed() {
		return fmt.Errorf("open failed: %s", res.ErrorMessage)
	}

	session, err := identity.New(uid)
	if err != nil {
		return err
	}
	ctx = identity.Set(ctx, session)

	res, err = login(ctx, m.NewIKS(), pass1, pass2)
	if err != nil {
		_, _ = db.Close()
		return err
	}
	printResult("login", res)

	res, err = db.Close()
	if err != nil {
		return err
	}
	printResult("close", res)
	return nil
}

func login(ctx context.Context, iks mumps.IKS, pass1, pass2 string) (mumps.Result, error) {
	session, ok := identity.Get(ctx)
	if !ok {
		return mumps.Result{}, fmt.Errorf("no session in context")
	}
	return session.Login(iks, pass1, pass2)
}
