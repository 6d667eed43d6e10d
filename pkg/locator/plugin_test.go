package locator

import (
	"os"
	"path/filepath"
	"plugin"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps/mumpstest"
)

type fakePlugin map[string]plugin.Symbol

func (f fakePlugin) Lookup(name string) (plugin.Symbol, error) {
	sym, ok := f[name]
	if !ok {
		return nil, errors.Errorf("plugin: symbol %s not found", name)
	}
	return sym, nil
}

// withPlugin swaps the plugin opener for the duration of a test
func withPlugin(t *testing.T, p symbolLookup, openErr error) *[]string {
	t.Helper()
	var opened []string
	orig := openPlugin
	openPlugin = func(path string) (symbolLookup, error) {
		opened = append(opened, path)
		if openErr != nil {
			return nil, openErr
		}
		return p, nil
	}
	t.Cleanup(func() { openPlugin = orig })
	return &opened
}

func artifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mumps.so")
	require.NoError(t, os.WriteFile(path, []byte("not really a plugin"), 0o600))
	return path
}

func TestPluginLoader_Missing(t *testing.T) {
	opened := withPlugin(t, fakePlugin{}, nil)
	path := filepath.Join(t.TempDir(), "build", "Release", "mumps.so")

	m, err := PluginLoader(path, "Module")()
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, ErrArtifactNotFound))
	assert.Contains(t, err.Error(), path)
	assert.Empty(t, *opened)
}

func TestPluginLoader_Variable(t *testing.T) {
	var exported mumps.Module = mumpstest.NewModule("release")
	withPlugin(t, fakePlugin{"Module": &exported}, nil)

	m, err := PluginLoader(artifact(t), "Module")()
	require.NoError(t, err)
	assert.Same(t, exported, m)
}

func TestPluginLoader_Value(t *testing.T) {
	stub := mumpstest.NewModule("release")
	withPlugin(t, fakePlugin{"Module": stub}, nil)

	m, err := PluginLoader(artifact(t), "Module")()
	require.NoError(t, err)
	assert.Same(t, stub, m)
}

func TestPluginLoader_Constructor(t *testing.T) {
	stub := mumpstest.NewModule("release")
	withPlugin(t, fakePlugin{"New": func() mumps.Module { return stub }}, nil)

	m, err := PluginLoader(artifact(t), "New")()
	require.NoError(t, err)
	assert.Same(t, stub, m)
}

func TestPluginLoader_NilVariable(t *testing.T) {
	var exported mumps.Module
	withPlugin(t, fakePlugin{"Module": &exported}, nil)

	_, err := PluginLoader(artifact(t), "Module")()
	assert.True(t, errors.Is(err, ErrSymbolType))
}

func TestPluginLoader_WrongType(t *testing.T) {
	withPlugin(t, fakePlugin{"Module": "a string"}, nil)

	_, err := PluginLoader(artifact(t), "Module")()
	assert.True(t, errors.Is(err, ErrSymbolType))
	assert.Contains(t, err.Error(), "string")
	assert.False(t, errors.Is(err, ErrArtifactNotFound))
}

func TestPluginLoader_OpenFails(t *testing.T) {
	withPlugin(t, nil, errors.New("plugin.Open: not a shared object"))

	_, err := PluginLoader(artifact(t), "Module")()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open release artifact")
	assert.False(t, errors.Is(err, ErrArtifactNotFound))
}

func TestPluginLoader_SymbolMissing(t *testing.T) {
	withPlugin(t, fakePlugin{}, nil)

	_, err := PluginLoader(artifact(t), "Module")()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up Module")
	assert.False(t, errors.Is(err, ErrArtifactNotFound))
}

func TestRegistryLoader(t *testing.T) {
	reg := mumps.NewRegistry()
	stub := mumpstest.NewModule("gtm")
	reg.Register("gtm", stub)

	m, err := RegistryLoader(reg, "gtm")()
	require.NoError(t, err)
	assert.Same(t, stub, m)
}

func TestRegistryLoader_NotRegistered(t *testing.T) {
	reg := mumps.NewRegistry()
	reg.Register("ydb", mumpstest.NewModule("ydb"))

	_, err := RegistryLoader(reg, "gtm")()
	assert.True(t, errors.Is(err, ErrArtifactNotFound))
	assert.Contains(t, err.Error(), `fallback module "gtm" is not registered (installed: [ydb])`)
}
