//go:build gtm && cgo

package gtm

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

func TestRegistered(t *testing.T) {
	m, err := mumps.DefaultRegistry.Lookup(Name)
	require.NoError(t, err)
	assert.IsType(t, &Module{}, m)
}

func TestVersionWhileClosed(t *testing.T) {
	res, err := New().NewGtm().Version()
	require.NoError(t, err)
	assert.Equal(t, mumps.Banner, res.Result)
}

func TestLifecycle(t *testing.T) {
	if os.Getenv("gtm_dist") == "" || os.Getenv("GTMCI") == "" {
		t.Skip("Skipping GT.M tests. Set gtm_dist and GTMCI to run.")
	}

	db := New().NewGtm()

	res, err := db.Get(mumps.Node{Global: "nodem"})
	require.NoError(t, err)
	assert.Equal(t, "Gtm is closed", res.ErrorMessage)

	res, err = db.Open()
	require.NoError(t, err)
	require.False(t, res.Failed(), res.ErrorMessage)

	res, err = db.Open()
	require.NoError(t, err)
	assert.Equal(t, "gtm is opened already", res.ErrorMessage)

	data := "hello"
	node := mumps.Node{Global: "nodemtest", Subscripts: []string{"greeting"}}
	res, err = db.Set(mumps.SetRequest{Node: node, Data: &data})
	require.NoError(t, err)
	assert.False(t, res.Failed(), res.ErrorMessage)

	res, err = db.Get(node)
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Data)
	assert.Equal(t, []string{"greeting"}, res.Subscripts)

	_, err = db.Kill(mumps.Node{Global: "nodemtest"})
	require.NoError(t, err)

	res, err = db.Close()
	require.NoError(t, err)
	assert.False(t, res.Failed(), res.ErrorMessage)

	res, err = db.Close()
	require.NoError(t, err)
	assert.Equal(t, "gtm is closed already", res.ErrorMessage)
}

func TestBridgeErrors(t *testing.T) {
	db := New().NewGtm()

	_, err := db.Set(mumps.SetRequest{Node: mumps.Node{Global: "x"}})
	assert.ErrorIs(t, err, mumps.ErrMissingData)

	_, err = db.Function(mumps.FunctionRequest{})
	assert.ErrorIs(t, err, mumps.ErrMissingFunction)

	_, err = db.Merge(mumps.MergeRequest{To: mumps.Node{Global: "x"}})
	assert.ErrorIs(t, err, mumps.ErrMissingMergeNodes)
}
