package report

import (
	"fmt"
	"io"
	"strconv"
)

// TSVEmitter writes samples as tab-separated "time<TAB>latency" lines.
type TSVEmitter struct {
	w io.Writer
}

// NewTSVEmitter creates an emitter writing to w.
func NewTSVEmitter(w io.Writer) *TSVEmitter {
	return &TSVEmitter{w: w}
}

// Emit writes one sample. Integral latencies are rendered without a decimal
// point, so sentinel samples come out as a bare "-1".
func (e *TSVEmitter) Emit(s Sample) error {
	_, err := fmt.Fprintf(e.w, "%d\t%s\n", s.Time, strconv.FormatFloat(s.AvgLatency, 'f', -1, 64))
	return err
}
