// Package config provides configuration management for nodem.
//
// Configuration is assembled from built-in defaults, an optional YAML file
// and environment variables, in that order of precedence (later wins). The
// source of every attribute is tracked so `nodemctl configuration show` can
// report it.
//
// # Configuration File
//
// The file is read from $NODEM_CONFIG_PATH/nodem.yml, or
// /etc/nodem/config/nodem.yml when NODEM_CONFIG_PATH is unset:
//
//	release_path: /opt/nodem/build/Release/mumps.so
//	fallback: gtm
//	encoding: cp1251
//	mode: strict
//
// # Environment Variables
//
//   - NODEM_RELEASE_PATH: compiled driver plugin tried first
//   - NODEM_RELEASE_SYMBOL: symbol exported by the plugin (default Module)
//   - NODEM_FALLBACK: registry name of the in-process fallback (default gtm)
//   - XNODEM_ENCODING: database charset
//   - XNODEM_AUTO_RELINK: non-zero enables auto-relink for function calls
//   - NODEM_MODE: canonical or strict
//   - NODEM_LOG_LEVEL: diagnostic level (trace, debug, info, warn, error, off);
//     a failed driver load and its hint are written at every level
package config
