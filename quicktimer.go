package quicktimer

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"lib.kevinlin.info/aperture/lib"
)

// DefaultTag is the display label attached to a report when the caller does
// not supply one.
const DefaultTag = "Timer"

var (
	// reporting is the effective reporting switch. It is initialized from the
	// build-configured default and may be overridden with SetReporting.
	reporting = buildReporting

	// output is the sink for report lines.
	output io.Writer = os.Stdout
)

// Time executes block exactly once and returns its result. When reporting is
// enabled, the execution is measured with a monotonic stopwatch and a single
// line identifying the call site, the default tag, and the elapsed time in
// whole milliseconds is written to the report sink. When reporting is
// disabled, the block runs with no clock reads and no output.
//
// A panic raised by the block propagates unchanged; no report line is written
// in that case.
func Time[T any](block func() T) T {
	return timed(DefaultTag, block)
}

// TimeTag behaves exactly like Time with a caller-supplied display tag. An
// empty tag normalizes to DefaultTag.
func TimeTag[T any](tag string, block func() T) T {
	return timed(tag, block)
}

// TimeSilent executes block exactly once and returns its result paired with
// the elapsed wall-clock duration of the execution. It always measures,
// regardless of the build configuration and the reporting switch, and never
// writes any output. Successive calls measure independently.
func TimeSilent[T any](block func() T) (T, time.Duration) {
	stopwatch := lib.NewStopwatch()
	result := block()

	return result, stopwatch.Elapsed()
}

// ReportingEnabled reads the effective reporting switch.
func ReportingEnabled() bool {
	return reporting
}

// SetReporting overrides the build-configured reporting default at runtime.
func SetReporting(enabled bool) {
	reporting = enabled
}

// SetOutput redirects report lines to the specified writer. The default sink
// is standard output.
func SetOutput(w io.Writer) {
	output = w
}

// timed implements the reporting variant shared by Time and TimeTag. It is
// always invoked through exactly one exported wrapper, which fixes the stack
// depth of the user's call site for runtime.Caller.
func timed[T any](tag string, block func() T) T {
	if !reporting {
		return block()
	}

	if tag == "" {
		tag = DefaultTag
	}

	// Resolve the call site before the clock starts so that only the block
	// itself is measured.
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
	}

	stopwatch := lib.NewStopwatch()
	result := block()
	elapsed := stopwatch.Elapsed()

	fmt.Fprintf(output, "in %s line %d %s: %d ms\n", file, line, tag, elapsed.Milliseconds())

	return result
}
