package store

import (
	"context"
	"strings"
	"testing"

	"gocloud.dev/blob/memblob"
)

func TestBlobStoreWrite(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	st := NewBlobStoreFromBucket(bucket, "mem://")
	data := []byte("recordcount=100\n")

	if err := st.Write(ctx, "workload_0", data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := bucket.ReadAll(ctx, "workload_0")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("read back %q, want %q", got, data)
	}

	if uri := st.URI("workload_0"); !strings.HasSuffix(uri, "/workload_0") {
		t.Errorf("URI = %q, want /workload_0 suffix", uri)
	}
}

func TestBlobStoreManifest(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	st := NewBlobStoreFromBucket(bucket, "mem://")
	m := &Manifest{
		Files:    []FileInfo{{Name: "workload_0", Checksum: Checksum([]byte("x")), ByteSize: 1}},
		Producer: ProducerInfo{Name: "workloadgen", Version: "test"},
	}
	if err := st.WriteManifest(ctx, m); err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}

	exists, err := bucket.Exists(ctx, ManifestName)
	if err != nil || !exists {
		t.Errorf("manifest not in bucket: exists=%v err=%v", exists, err)
	}
}

func TestBlobAndLocalStoresMatch(t *testing.T) {
	ctx := context.Background()
	data := []byte("threadcount=100\nhosts=queenbee\n")

	local, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	if err := local.Write(ctx, "workload_0", data); err != nil {
		t.Fatalf("local write: %v", err)
	}

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	bs := NewBlobStoreFromBucket(bucket, "mem://")
	if err := bs.Write(ctx, "workload_0", data); err != nil {
		t.Fatalf("blob write: %v", err)
	}

	fromBlob, err := bucket.ReadAll(ctx, "workload_0")
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if Checksum(fromBlob) != Checksum(data) {
		t.Error("blob bytes differ from source")
	}
}
