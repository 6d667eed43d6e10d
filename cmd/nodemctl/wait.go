package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/config"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the release driver to be built",
	Long: `Wait until the release artifact exists, for use while "make plugin" runs.

The directory holding the artifact is watched for changes; it must exist.

Example:
  nodemctl wait
  nodemctl wait --timeout 5m`,
	Run: func(cmd *cobra.Command, args []string) {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		path := config.Get().ReleasePath

		if err := waitForArtifact(path, timeout); err != nil {
			fmt.Fprintf(os.Stderr, "Release driver did not appear: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Release driver is ready at %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().DurationP("timeout", "t", 90*time.Second, "How long to wait")
}

func waitForArtifact(path string, timeout time.Duration) error {
	if exists(path) {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	// the artifact may have landed between the first check and Add
	if exists(path) {
		return nil
	}

	deadline := time.After(timeout)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) {
				if exists(path) {
					return nil
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-deadline:
			return fmt.Errorf("%s not found after %s", path, timeout)
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
