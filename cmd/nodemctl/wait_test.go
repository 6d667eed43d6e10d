package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForArtifact_AlreadyThere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mumps.so")
	require.NoError(t, os.WriteFile(path, []byte("elf"), 0o644))

	assert.NoError(t, waitForArtifact(path, time.Second))
}

func TestWaitForArtifact_Created(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mumps.so")

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = os.WriteFile(path, []byte("elf"), 0o644)
	}()

	assert.NoError(t, waitForArtifact(path, 10*time.Second))
}

func TestWaitForArtifact_Timeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mumps.so")

	err := waitForArtifact(path, 50*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found after")
}

func TestWaitForArtifact_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build", "Release", "mumps.so")

	err := waitForArtifact(path, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch directory")
}
