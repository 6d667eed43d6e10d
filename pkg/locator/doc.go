// Package locator resolves the driver module a caller should use without
// the caller knowing how the driver was installed.
//
// A [Locator] holds an ordered list of candidates. [Default] builds the
// standard pair:
//
//   - release: the Go plugin produced by `make plugin`
//     (build/Release/mumps.so), opened with [PluginLoader];
//   - fallback: the module linked into the process and registered under
//     the configured name, found with [RegistryLoader].
//
// Resolution is a single pass. The first module that loads is returned
// unchanged and nothing is logged. If every candidate fails, the last
// failure is written with its stack trace to the error stream and a
// *[ResolveError] is returned; when the first failure was
// [ErrArtifactNotFound] an install hint is written to the info stream as
// well.
//
//	l := locator.Default(config.Get(), logging.Default("info"))
//	module, err := l.Resolve()
//	if err != nil {
//	    os.Exit(1)
//	}
//	db := module.NewGtm()
package locator
