// Package report extracts periodic throughput samples from benchmark run
// logs and fills the gaps so downstream plotting sees a dense time series.
package report

// NoLatency marks a time step with no recorded read operations.
const NoLatency float64 = -1

// DefaultDelta is the reporting interval, in seconds, between consecutive
// status lines in a benchmark log.
const DefaultDelta = 10

// Sample is one throughput report: seconds elapsed since the start of the
// run, and the average read latency observed during that interval in
// microseconds. AvgLatency is NoLatency when the interval had no reads.
type Sample struct {
	Time       int
	AvgLatency float64
}

// Emitter consumes samples in time order.
type Emitter interface {
	Emit(Sample) error
}

// MultiEmitter fans each sample out to several emitters.
type MultiEmitter []Emitter

func (m MultiEmitter) Emit(s Sample) error {
	for _, e := range m {
		if err := e.Emit(s); err != nil {
			return err
		}
	}
	return nil
}
