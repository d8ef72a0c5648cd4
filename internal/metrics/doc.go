// Package metrics contains abstractions for emission of timing samples measured by the companion
// binary. Currently, the only supported metrics output engine is statsd.
//
// Emissions are structured around the notion of hooks: a hook interface defines methods that are
// invoked after a timed block completes, and implementations of the interface output the sample to
// a backend engine. This decouples the responsibility of shipping metrics from the semantics of
// measuring a block. Since the binary is short-lived, hook implementations emit synchronously so
// that samples are flushed onto the wire before the process exits.
package metrics
