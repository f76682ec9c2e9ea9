package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLocalStoreWrite(t *testing.T) {
	dir := t.TempDir()
	st, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	ctx := context.Background()
	data := []byte("recordcount=100\n")

	if err := st.Write(ctx, "workload_0", data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "workload_0"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("read back %q, want %q", got, data)
	}

	// No temp file left behind.
	if _, err := os.Stat(filepath.Join(dir, "workload_0.tmp")); !os.IsNotExist(err) {
		t.Error("temp file should be removed after Write")
	}

	if uri := st.URI("workload_0"); !strings.HasPrefix(uri, "file://") {
		t.Errorf("URI = %q, want file:// prefix", uri)
	}
}

func TestLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := NewLocalStore(dir); err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestLocalStoreManifest(t *testing.T) {
	dir := t.TempDir()
	st, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	m := &Manifest{
		Files: []FileInfo{
			{Name: "workload_0", Checksum: Checksum([]byte("x")), ByteSize: 1, InsertStart: 0, InsertCount: 30},
		},
		Producer:  ProducerInfo{Name: "workloadgen", Version: "test"},
		CreatedAt: time.Now().UTC(),
	}
	if err := st.WriteManifest(context.Background(), m); err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}

	var got Manifest
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if len(got.Files) != 1 || got.Files[0].Name != "workload_0" {
		t.Errorf("manifest round-trip = %+v", got)
	}
	if got.Producer.Name != "workloadgen" {
		t.Errorf("producer = %+v", got.Producer)
	}
}

func TestChecksumFormat(t *testing.T) {
	sum := Checksum([]byte("abc"))
	if !strings.HasPrefix(sum, "sha256:") {
		t.Errorf("Checksum = %q, want sha256: prefix", sum)
	}
	if sum != Checksum([]byte("abc")) {
		t.Error("Checksum not deterministic")
	}
	if sum == Checksum([]byte("abd")) {
		t.Error("distinct inputs share a checksum")
	}
}
