// Package workload plans and renders partitioned YCSB workload files.
//
// A large insertion job is split across agent processes: each agent loads a
// contiguous slice of the record range, so one workload file is rendered per
// slice with its own insertstart/insertcount offsets.
package workload

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when generation parameters fail
// validation. Validation runs before any file is written.
var ErrInvalidConfiguration = errors.New("invalid generation configuration")

// Request carries the parameters for one generation run.
type Request struct {
	RecordCount    int64
	OperationCount int64
	InsertCount    int64 // records inserted by each agent
	Hosts          []string
	ThreadCount    int
	TemplatePath   string
	OutputPrefix   string
}

// Validate checks the generation invariants.
func (r Request) Validate() error {
	if r.RecordCount <= 0 {
		return fmt.Errorf("%w: record count must be positive, got %d", ErrInvalidConfiguration, r.RecordCount)
	}
	if r.InsertCount <= 0 {
		return fmt.Errorf("%w: insert count must be positive, got %d", ErrInvalidConfiguration, r.InsertCount)
	}
	if r.RecordCount < r.InsertCount {
		return fmt.Errorf("%w: record count %d is smaller than per-agent insert count %d",
			ErrInvalidConfiguration, r.RecordCount, r.InsertCount)
	}
	if r.TemplatePath == "" {
		return fmt.Errorf("%w: template path is required", ErrInvalidConfiguration)
	}
	if r.OutputPrefix == "" {
		return fmt.Errorf("%w: output prefix is required", ErrInvalidConfiguration)
	}
	return nil
}
