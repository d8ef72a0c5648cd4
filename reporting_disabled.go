//go:build !timing
// +build !timing

package quicktimer

// buildReporting is the compile-time reporting default. Ordinary builds do
// not report: Time and TimeTag execute their block with no clock reads and
// no output unless reporting is re-enabled with SetReporting.
const buildReporting = false
