package nodem

import (
	"sync"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/config"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/locator"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/logging"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

var (
	once    sync.Once
	module  mumps.Module
	loadErr error
)

// Load resolves the driver the first time it is called and returns the
// same module, or the same error, on every later call.
func Load() (mumps.Module, error) {
	once.Do(func() {
		cfg := config.Get()
		module, loadErr = Resolve(cfg, logging.Default(cfg.LogLevel))
	})
	return module, loadErr
}

// Resolve runs the locator built from cfg without caching. Failures are
// reported on streams before the *locator.ResolveError is returned.
func Resolve(cfg *config.NodemConfig, streams logging.Streams) (mumps.Module, error) {
	return locator.Default(cfg, streams).Resolve()
}
