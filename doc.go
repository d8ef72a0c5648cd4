// Package quicktimer provides two small stopwatch wrappers around a block of
// code. Time and TimeTag conditionally measure the wall-clock duration of a
// block and print a single report line to standard output; TimeSilent always
// measures and hands the duration back to the caller without printing.
//
// Reporting is off in ordinary builds. It is enabled by compiling with the
// "timing" build tag, or at runtime with SetReporting. The silent variant is
// unaffected by either.
package quicktimer
