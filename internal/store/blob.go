package store

import (
	"context"
	"fmt"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobStore writes rendered files to a bucket opened from a gocloud URL.
type BlobStore struct {
	bucket *blob.Bucket
	url    string
}

// NewBlobStore opens the bucket addressed by url.
func NewBlobStore(ctx context.Context, url string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", url, err)
	}
	return &BlobStore{bucket: bucket, url: url}, nil
}

// NewBlobStoreFromBucket wraps an already-open bucket. Used by tests with
// in-memory buckets.
func NewBlobStoreFromBucket(bucket *blob.Bucket, url string) *BlobStore {
	return &BlobStore{bucket: bucket, url: url}
}

// Write stores one file in the bucket.
func (s *BlobStore) Write(ctx context.Context, name string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, name, data, nil); err != nil {
		return fmt.Errorf("write %s to %s: %w", name, s.url, err)
	}
	return nil
}

// WriteManifest stores the run manifest in the bucket.
func (s *BlobStore) WriteManifest(ctx context.Context, m *Manifest) error {
	data, err := m.Encode()
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return s.Write(ctx, ManifestName, data)
}

// URI returns the canonical URI for the given name.
func (s *BlobStore) URI(name string) string {
	return strings.TrimSuffix(s.url, "/") + "/" + name
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}
