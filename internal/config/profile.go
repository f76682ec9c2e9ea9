// Package config loads optional generation profiles for workloadgen.
//
// A profile is a small YAML file pinning per-cluster settings (hosts, thread
// count, workload tuning) so operators don't repeat them on every
// invocation. Flags beat the profile; the profile beats environment
// variables; the environment beats built-in defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/benchkit/ycsb-tools/internal/workload"
)

// Environment fallbacks consulted when neither flags nor a profile provide
// a value.
const (
	EnvHosts   = "WORKLOADGEN_HOSTS"   // comma-separated host list
	EnvThreads = "WORKLOADGEN_THREADS" // client thread count
)

// Profile holds per-cluster generation settings. Unset fields leave the
// built-in defaults untouched.
type Profile struct {
	Hosts       []string `yaml:"hosts"`
	ThreadCount int      `yaml:"threadcount"`

	FieldLength           int      `yaml:"fieldlength"`
	FieldCount            int      `yaml:"fieldcount"`
	ReadAllFields         *bool    `yaml:"readallfields"`
	ReadProportion        *float64 `yaml:"readproportion"`
	UpdateProportion      *float64 `yaml:"updateproportion"`
	ScanProportion        *float64 `yaml:"scanproportion"`
	InsertProportion      *float64 `yaml:"insertproportion"`
	RequestDistribution   string   `yaml:"requestdistribution"`
	ReadConsistencyLevel  string   `yaml:"readconsistencylevel"`
	WriteConsistencyLevel string   `yaml:"writeconsistencylevel"`
}

// Load reads a profile file. Unknown keys are an error so typos don't
// silently fall back to defaults.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

// Tuning overlays the profile onto a base tuning, replacing only the fields
// the profile sets.
func (p *Profile) Tuning(base workload.Tuning) workload.Tuning {
	if p.FieldLength > 0 {
		base.FieldLength = p.FieldLength
	}
	if p.FieldCount > 0 {
		base.FieldCount = p.FieldCount
	}
	if p.ReadAllFields != nil {
		base.ReadAllFields = *p.ReadAllFields
	}
	if p.ReadProportion != nil {
		base.ReadProportion = *p.ReadProportion
	}
	if p.UpdateProportion != nil {
		base.UpdateProportion = *p.UpdateProportion
	}
	if p.ScanProportion != nil {
		base.ScanProportion = *p.ScanProportion
	}
	if p.InsertProportion != nil {
		base.InsertProportion = *p.InsertProportion
	}
	if p.RequestDistribution != "" {
		base.RequestDistribution = p.RequestDistribution
	}
	if p.ReadConsistencyLevel != "" {
		base.ReadConsistencyLevel = p.ReadConsistencyLevel
	}
	if p.WriteConsistencyLevel != "" {
		base.WriteConsistencyLevel = p.WriteConsistencyLevel
	}
	return base
}

// HostsFromEnv returns the host list from the environment, if set.
func HostsFromEnv() ([]string, bool) {
	v := os.Getenv(EnvHosts)
	if v == "" {
		return nil, false
	}
	return strings.Split(v, ","), true
}

// ThreadsFromEnv returns the thread count from the environment, if set and
// parseable.
func ThreadsFromEnv() (int, bool) {
	v := os.Getenv(EnvThreads)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
