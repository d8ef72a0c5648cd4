//go:build timing
// +build timing

package quicktimer

// buildReporting is the compile-time reporting default. Builds with the
// "timing" tag report on every Time and TimeTag invocation unless overridden
// with SetReporting.
const buildReporting = true
