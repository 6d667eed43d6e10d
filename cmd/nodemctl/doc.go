// Command nodemctl is the operator CLI for nodem.
//
// # Quick Start
//
//	# Build the release driver and wait for it
//	make plugin &
//	nodemctl wait --timeout 2m
//
//	# Check which candidate loads
//	nodemctl resolve
//
//	# Open the database, log in and close again
//	nodemctl example --uid demo --pass1 secret
//
// Configuration is read from /etc/nodem/config/nodem.yml (or
// NODEM_CONFIG_PATH) and the environment; see "nodemctl configuration show".
package main
