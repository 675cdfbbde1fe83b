//go:build !debug

// Package debug provides internal consistency checks for encoders. They are
// compiled in with the debug build tag and are no-ops otherwise, so hot
// encoding paths don't pay for them in release builds.
package debug

// Enabled reports whether the debug build tag is set. Guard checks which
// need extra work with `if debug.Enabled {...}`.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
