// Package mumps defines the driver surface handed out by the locator.
//
// A driver artifact exports a [Module]. The module constructs [Gtm] handles
// onto the GT.M database and [IKS] handles onto the identity/session
// subsystem that lives next to it. Every call returns a [Result] shaped like
// the JSON document the M call-in routines produce:
//
//	{"ok": 1, "global": "dlw", "subscripts": ["9", "testing"], "data": "record 1"}
//
// # Registration
//
// Drivers linked into the process register themselves from init:
//
//	func init() {
//	    mumps.Register("gtm", New())
//	}
//
// The locator's fallback candidate looks modules up in [DefaultRegistry].
//
// # Call-in helpers
//
// [EncodeSubscripts], [EncodeArguments], [ParseStatus] and [DecodeReply]
// implement the argument framing and reply parsing the call-in routines
// expect. [Transcoder] converts values when XNODEM_ENCODING names a
// non-UTF-8 database charset.
package mumps
