package workload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benchkit/ycsb-tools/internal/store"
)

// memStore is an in-memory ConfigStore for generator tests.
type memStore struct {
	files    map[string][]byte
	order    []string
	manifest *store.Manifest
	failOn   string
}

func newMemStore() *memStore {
	return &memStore{files: make(map[string][]byte)}
}

func (m *memStore) Write(_ context.Context, name string, data []byte) error {
	if name == m.failOn {
		return fmt.Errorf("write %s: disk full", name)
	}
	m.files[name] = append([]byte(nil), data...)
	m.order = append(m.order, name)
	return nil
}

func (m *memStore) WriteManifest(_ context.Context, manifest *store.Manifest) error {
	m.manifest = manifest
	return nil
}

func (m *memStore) URI(name string) string { return "mem://" + name }
func (m *memStore) Close() error           { return nil }

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.tmpl")
	if err := os.WriteFile(path, []byte(fullTemplate), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func TestGeneratorRun(t *testing.T) {
	st := newMemStore()
	req := testRequest()
	req.TemplatePath = writeTemplate(t)

	var confirmedWith int64
	confirm := func(n int64) (bool, error) {
		confirmedWith = n
		return true, nil
	}

	gen := NewGenerator(st, confirm, DefaultTuning(), nil)
	if err := gen.Run(context.Background(), req); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if confirmedWith != 4 {
		t.Errorf("confirmed with %d files, want 4", confirmedWith)
	}
	if len(st.files) != 4 {
		t.Fatalf("wrote %d files, want 4: %v", len(st.files), st.order)
	}

	for i, wantStart := range []int64{0, 30, 60, 90} {
		name := fmt.Sprintf("workload_%d", i)
		data, ok := st.files[name]
		if !ok {
			t.Fatalf("missing file %s", name)
		}
		if want := fmt.Sprintf("insertstart=%d\n", wantStart); !strings.Contains(string(data), want) {
			t.Errorf("%s missing %q", name, want)
		}
		if !strings.Contains(string(data), "insertcount=30\n") {
			t.Errorf("%s missing insertcount=30", name)
		}
	}

	if st.manifest == nil {
		t.Fatal("manifest not written")
	}
	if len(st.manifest.Files) != 4 {
		t.Fatalf("manifest lists %d files, want 4", len(st.manifest.Files))
	}
	for _, info := range st.manifest.Files {
		data, ok := st.files[info.Name]
		if !ok {
			t.Errorf("manifest names unknown file %s", info.Name)
			continue
		}
		if info.Checksum != store.Checksum(data) {
			t.Errorf("%s: checksum %s does not match contents", info.Name, info.Checksum)
		}
		if info.ByteSize != int64(len(data)) {
			t.Errorf("%s: byte size %d, want %d", info.Name, info.ByteSize, len(data))
		}
	}
}

func TestGeneratorDeclinedWritesNothing(t *testing.T) {
	st := newMemStore()
	req := testRequest()
	req.TemplatePath = writeTemplate(t)

	decline := func(int64) (bool, error) { return false, nil }

	gen := NewGenerator(st, decline, DefaultTuning(), nil)
	err := gen.Run(context.Background(), req)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
	if len(st.files) != 0 || st.manifest != nil {
		t.Errorf("declined run wrote output: files=%v manifest=%v", st.order, st.manifest)
	}
}

func TestGeneratorValidatesBeforeConfirm(t *testing.T) {
	st := newMemStore()
	req := testRequest()
	req.RecordCount = 10
	req.InsertCount = 50
	req.TemplatePath = writeTemplate(t)

	confirmed := false
	confirm := func(int64) (bool, error) {
		confirmed = true
		return true, nil
	}

	gen := NewGenerator(st, confirm, DefaultTuning(), nil)
	err := gen.Run(context.Background(), req)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
	if confirmed {
		t.Error("confirmation ran before validation failed")
	}
	if len(st.files) != 0 {
		t.Errorf("invalid run wrote files: %v", st.order)
	}
}

func TestGeneratorWriteFailureAbortsLoop(t *testing.T) {
	st := newMemStore()
	st.failOn = "workload_1"
	req := testRequest()
	req.TemplatePath = writeTemplate(t)

	gen := NewGenerator(st, nil, DefaultTuning(), nil)
	err := gen.Run(context.Background(), req)
	if err == nil {
		t.Fatal("expected write failure to surface")
	}
	if len(st.files) != 1 {
		t.Errorf("wrote %d files before abort, want 1: %v", len(st.files), st.order)
	}
	if st.manifest != nil {
		t.Error("manifest written despite failed run")
	}
}

func TestGeneratorMissingTemplate(t *testing.T) {
	st := newMemStore()
	req := testRequest()
	req.TemplatePath = filepath.Join(t.TempDir(), "nope.tmpl")

	gen := NewGenerator(st, nil, DefaultTuning(), nil)
	if err := gen.Run(context.Background(), req); err == nil {
		t.Fatal("expected error for missing template")
	}
	if len(st.files) != 0 {
		t.Errorf("wrote files without a template: %v", st.order)
	}
}
