// Package gtm is the native GT.M driver. It talks to the database through
// the GT.M call-in interface and needs cgo, the GT.M headers and
// libgtmshr.
//
// Build with: go build -tags gtm
// Requires: CGO_ENABLED=1, the call-in table named by GTMCI, and
// CGO_CFLAGS/CGO_LDFLAGS pointing at $gtm_dist when GT.M is not installed
// under /usr/lib/fis-gtm/current.
//
// Importing the package registers the driver as "gtm" in
// mumps.DefaultRegistry, which makes it the locator's fallback candidate.
// cmd/mumps-plugin wraps the same driver into the release plugin. Without
// the gtm tag the package is empty and nothing is registered.
package gtm

// Name is the registry name of the native driver.
const Name = "gtm"
