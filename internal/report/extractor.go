package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidDelta is returned for non-positive reporting intervals.
var ErrInvalidDelta = errors.New("delta must be a positive number of seconds")

// maxLineSize bounds a single log line. Status lines are short; this only
// guards against pathological input.
const maxLineSize = 1 << 20

// Extract reads a benchmark log line by line and emits one sample per
// delta-aligned time step, in order and with no gaps.
//
// Every input line is assumed to consume one reporting interval, so the
// expected-time counter advances for every line, including lines that are
// skipped. Lines reporting failed operations are skipped outright. Lines
// without a throughput marker are ignored. When a throughput line reports a
// time ahead of the expected counter, the missing steps are backfilled with
// NoLatency samples before the real sample is emitted.
func Extract(r io.Reader, delta int, emit func(Sample) error) error {
	if delta <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDelta, delta)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	// Start one step back so the first sample lands the counter on 0.
	expected := 0 - delta

	for scanner.Scan() {
		line := scanner.Text()
		expected += delta

		if strings.Contains(line, failedMarker) {
			// Failed-operation lines still consume a reporting interval.
			continue
		}
		if !strings.Contains(line, throughputMarker) {
			continue
		}

		sample, err := Parse(line)
		if err != nil {
			return err
		}

		if sample.Time != expected {
			for t := expected; t < sample.Time; t += delta {
				if err := emit(Sample{Time: t, AvgLatency: NoLatency}); err != nil {
					return fmt.Errorf("emit backfill sample at %d: %w", t, err)
				}
			}
			expected = sample.Time
		}

		if err := emit(sample); err != nil {
			return fmt.Errorf("emit sample at %d: %w", sample.Time, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	return nil
}
