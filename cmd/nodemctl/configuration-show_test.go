package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfiguration(t *testing.T) {
	t.Setenv("NODEM_CONFIG_PATH", t.TempDir())
	t.Setenv("NODEM_FALLBACK", "stub")

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, showConfiguration(&out, "text"))
		assert.Contains(t, out.String(), "fallback")
		assert.Contains(t, out.String(), "environment")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, showConfiguration(&out, "json"))
		assert.True(t, json.Valid(out.Bytes()))
		assert.Contains(t, out.String(), `"stub"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		var out bytes.Buffer
		assert.Error(t, showConfiguration(&out, "yaml"))
	})
}
