package metrics

import (
	"os"
	"time"
)

// TimingHook is a metrics hook interface for reporting the outcome of a timed block.
type TimingHook interface {
	// EmitTiming reports the elapsed wall-clock duration of a single completed block.
	EmitTiming(tag string, elapsed time.Duration)

	// EmitError reports the occurrence of a failure while executing a block.
	EmitError()
}

// StatsdTimingHook is an implementation of TimingHook that outputs metrics to statsd. Unlike a
// long-lived server, the companion binary exits immediately after its single measurement, so
// emissions are synchronous; a sample shipped from a goroutine could be lost at process exit.
type StatsdTimingHook struct {
	client *StatsdClient
}

// NoopTimingHook implements the TimingHook interface but noops on all emissions.
type NoopTimingHook struct{}

// NewStatsdTimingHook creates a new hook with the specified statsd address and sample rate.
func NewStatsdTimingHook(addr string, sampleRate float32) (TimingHook, error) {
	client, err := statsdClientFactory(addr, sampleRate)
	if err != nil {
		return nil, err
	}

	return &StatsdTimingHook{client}, nil
}

// EmitTiming statsd implementation
func (h *StatsdTimingHook) EmitTiming(tag string, elapsed time.Duration) {
	tags := map[string]string{
		"tag": tag,
	}

	h.client.Count("event.block", 1, tags)
	h.client.Timing("latency.block", elapsed, tags)
}

// EmitError statsd implementation
func (h *StatsdTimingHook) EmitError() {
	h.client.Count("event.error", 1, nil)
}

// NewNoopTimingHook creates a noop implementation of TimingHook.
func NewNoopTimingHook() TimingHook {
	return &NoopTimingHook{}
}

// EmitTiming noops.
func (h *NoopTimingHook) EmitTiming(tag string, elapsed time.Duration) {}

// EmitError noops.
func (h *NoopTimingHook) EmitError() {}

// statsdClientFactory creates a configured StatsdClient with reasonable defaults for the given
// statsd server address and sample rate.
func statsdClientFactory(addr string, sampleRate float32) (*StatsdClient, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	defaultTags := map[string]string{
		"host": hostname,
	}

	return NewStatsdClient(addr, "quicktimer", defaultTags, sampleRate)
}
