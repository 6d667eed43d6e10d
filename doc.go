// Package nodem gives Go programs access to a GT.M database through a
// driver module that is located at run time.
//
// # Loading
//
// The release build of the driver is a Go plugin produced by
//
//	make plugin
//
// which writes build/Release/mumps.so. When it is missing, the driver
// linked into the process under the name "gtm" (see pkg/mumps/gtm) is
// used instead. When neither loads, Load returns a *locator.ResolveError,
// the fallback failure is written with its stack to stderr and, if the
// release artifact was simply absent, a rebuild hint goes to stdout.
//
//	m, err := nodem.Load()
//	if err != nil {
//		return err
//	}
//	db := m.NewGtm()
//	if res, _ := db.Open(); res.Failed() {
//		return fmt.Errorf("open: %s", res.ErrorMessage)
//	}
//	defer db.Close()
//
// # Environment Variables
//
//   - NODEM_CONFIG_PATH: directory holding nodem.yml (default /etc/nodem/config)
//   - NODEM_RELEASE_PATH: release artifact (default build/Release/mumps.so)
//   - NODEM_RELEASE_SYMBOL: exported symbol (default Module)
//   - NODEM_FALLBACK: registry name of the fallback driver (default gtm)
//   - NODEM_MODE: canonical or strict
//   - NODEM_LOG_LEVEL: trace, debug, info, warn, error
//   - XNODEM_ENCODING: database charset, e.g. cp1251
//   - XNODEM_AUTO_RELINK: non-zero relinks routines before function calls
package nodem
