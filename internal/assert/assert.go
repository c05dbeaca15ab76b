// Package assert provides cheap, build-tag-free debug assertions used
// throughout the engine to enforce the board and move invariants of §3
// and §7 without paying their cost in release builds.
package assert

import "fmt"

// DEBUG toggles whether Assert panics on a failed condition. Set to
// false to elide invariant checks on the hot path; board construction
// and move application keep a small always-on subset of checks even
// when DEBUG is false (see board.Validate).
var DEBUG = false

// Assert panics with a formatted message if cond is false and DEBUG is
// enabled. It is a no-op otherwise.
func Assert(cond bool, format string, args ...interface{}) {
	if !DEBUG {
		return
	}
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
