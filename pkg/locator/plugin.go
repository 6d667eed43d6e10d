package locator

import (
	"os"
	"plugin"

	"github.com/pkg/errors"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

type symbolLookup interface {
	Lookup(symName string) (plugin.Symbol, error)
}

// openPlugin is replaced in tests; building real plugins needs the go tool.
var openPlugin = func(path string) (symbolLookup, error) {
	return plugin.Open(path)
}

// PluginLoader loads a module from a Go plugin built with
// -buildmode=plugin. A missing file is classified as ErrArtifactNotFound.
func PluginLoader(path, symbol string) Loader {
	return func() (mumps.Module, error) {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(ErrArtifactNotFound, "release artifact %s", path)
			}
			return nil, errors.Wrapf(err, "failed to stat release artifact %s", path)
		}

		p, err := openPlugin(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open release artifact %s", path)
		}

		sym, err := p.Lookup(symbol)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to look up %s in %s", symbol, path)
		}

		return moduleFromSymbol(sym, symbol)
	}
}

// moduleFromSymbol accepts an exported module variable (which Lookup hands
// back as a pointer), a module value, or a constructor function.
func moduleFromSymbol(sym plugin.Symbol, name string) (mumps.Module, error) {
	switch v := sym.(type) {
	case *mumps.Module:
		if v != nil && *v != nil {
			return *v, nil
		}
	case func() mumps.Module:
		if m := v(); m != nil {
			return m, nil
		}
	case mumps.Module:
		return v, nil
	}
	return nil, errors.Wrapf(ErrSymbolType, "%s has type %T", name, sym)
}

// RegistryLoader loads the module registered under name. An unknown name is
// classified as ErrArtifactNotFound.
func RegistryLoader(reg *mumps.Registry, name string) Loader {
	return func() (mumps.Module, error) {
		m, err := reg.Lookup(name)
		if err != nil {
			if errors.Is(err, mumps.ErrNotRegistered) {
				return nil, errors.Wrapf(ErrArtifactNotFound, "fallback module %q is not registered (installed: %v)", name, reg.Installed())
			}
			return nil, errors.WithStack(err)
		}
		return m, nil
	}
}
