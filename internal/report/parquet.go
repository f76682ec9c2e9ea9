package report

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// sampleRow is the parquet schema for one time step.
type sampleRow struct {
	Time         int64   `parquet:"time"`
	AvgLatencyUs float64 `parquet:"avg_latency_us"`
}

// ParquetWriter emits the time series as a parquet file for columnar
// analysis alongside the TSV stream.
type ParquetWriter struct {
	f  *os.File
	pw *parquet.GenericWriter[sampleRow]
}

// NewParquetWriter creates the output file and a writer over it.
func NewParquetWriter(path string) (*ParquetWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create parquet output %s: %w", path, err)
	}
	return &ParquetWriter{
		f:  f,
		pw: parquet.NewGenericWriter[sampleRow](f),
	}, nil
}

// Emit appends one sample row.
func (w *ParquetWriter) Emit(s Sample) error {
	_, err := w.pw.Write([]sampleRow{{
		Time:         int64(s.Time),
		AvgLatencyUs: s.AvgLatency,
	}})
	if err != nil {
		return fmt.Errorf("write parquet row: %w", err)
	}
	return nil
}

// Close flushes the parquet footer and closes the file. It must be called on
// all exit paths; a failed flush still closes the underlying file.
func (w *ParquetWriter) Close() error {
	perr := w.pw.Close()
	ferr := w.f.Close()
	if perr != nil {
		return fmt.Errorf("finalize parquet output: %w", perr)
	}
	return ferr
}
