package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a throughput report line does not have
// the expected shape.
var ErrMalformedLine = errors.New("malformed throughput line")

const (
	// elapsedMarker separates the elapsed-seconds prefix from the rest of a
	// status line, e.g. "130 sec: 12345 operations; ...".
	elapsedMarker = "sec:"

	// latencyMarker precedes the average read latency field. Absent when the
	// interval recorded no read operations.
	latencyMarker = "READ AverageLatency(us)="

	// throughputMarker identifies periodic status lines.
	throughputMarker = "current ops/sec"

	// failedMarker identifies lines reporting failed operations.
	failedMarker = "failed"
)

// Parse extracts a sample from a single throughput report line. The line
// must carry the elapsed-seconds marker; a missing or unreadable read
// latency field yields NoLatency rather than an error.
func Parse(line string) (Sample, error) {
	prefix, rest, found := strings.Cut(line, elapsedMarker)
	if !found {
		return Sample{}, fmt.Errorf("%w: no %q in %q", ErrMalformedLine, elapsedMarker, line)
	}

	elapsed, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return Sample{}, fmt.Errorf("%w: bad elapsed seconds in %q: %v", ErrMalformedLine, line, err)
	}

	_, field, found := strings.Cut(rest, latencyMarker)
	if !found {
		// No read operations in this interval.
		return Sample{Time: elapsed, AvgLatency: NoLatency}, nil
	}

	if end := strings.IndexByte(field, ']'); end >= 0 {
		field = field[:end]
	}

	latency, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: bad latency field in %q: %v", ErrMalformedLine, line, err)
	}

	return Sample{Time: elapsed, AvgLatency: latency}, nil
}
