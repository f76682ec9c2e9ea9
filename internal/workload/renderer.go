package workload

import (
	"fmt"
	"strings"

	"github.com/cbroglie/mustache"
)

// WorkloadClass is the benchmark driver class named in every rendered file.
const WorkloadClass = "com.yahoo.ycsb.workloads.CoreWorkload"

// Tuning holds the workload properties that are fixed per run rather than
// per partition. The zero value is not useful; start from DefaultTuning.
type Tuning struct {
	FieldLength           int
	FieldCount            int
	ReadAllFields         bool
	ReadProportion        float64
	UpdateProportion      float64
	ScanProportion        float64
	InsertProportion      float64
	RequestDistribution   string
	ReadConsistencyLevel  string
	WriteConsistencyLevel string
}

// DefaultTuning returns the stock read-heavy tuning: 10 fields of 200 bytes,
// 90/10 read/update, uniform key distribution, quorum consistency.
func DefaultTuning() Tuning {
	return Tuning{
		FieldLength:           200,
		FieldCount:            10,
		ReadAllFields:         true,
		ReadProportion:        0.9,
		UpdateProportion:      0.1,
		ScanProportion:        0,
		InsertProportion:      0,
		RequestDistribution:   "uniform",
		ReadConsistencyLevel:  "QUORUM",
		WriteConsistencyLevel: "QUORUM",
	}
}

// Context builds the substitution map the template sees for one partition.
func Context(req Request, tun Tuning, part Partition) map[string]interface{} {
	return map[string]interface{}{
		"recordcount":           req.RecordCount,
		"operationcount":        req.OperationCount,
		"insertstart":           part.InsertStart,
		"insertcount":           part.InsertCount,
		"fieldlength":           tun.FieldLength,
		"fieldcount":            tun.FieldCount,
		"workload":              WorkloadClass,
		"readallfields":         tun.ReadAllFields,
		"readproportion":        tun.ReadProportion,
		"updateproportion":      tun.UpdateProportion,
		"scanproportion":        tun.ScanProportion,
		"insertproportion":      tun.InsertProportion,
		"requestdistribution":   tun.RequestDistribution,
		"hosts":                 strings.Join(req.Hosts, ","),
		"threadcount":           req.ThreadCount,
		"readconsistencylevel":  tun.ReadConsistencyLevel,
		"writeconsistencylevel": tun.WriteConsistencyLevel,
	}
}

// Render substitutes the context into a mustache template.
func Render(template string, ctx map[string]interface{}) (string, error) {
	out, err := mustache.Render(template, ctx)
	if err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return out, nil
}
