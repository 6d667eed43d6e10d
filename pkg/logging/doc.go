// Package logging builds the diagnostic streams used by the locator and the
// nodemctl commands on top of hashicorp/go-hclog.
package logging
