// Package store persists rendered workload files, either on the local
// filesystem or in a blob bucket addressed by URL.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// ManifestName is the fixed name of the run manifest written next to the
// generated files.
const ManifestName = "_manifest.json"

// ConfigStore abstracts writing rendered workload files.
type ConfigStore interface {
	// Write stores one rendered file under the given name.
	Write(ctx context.Context, name string, data []byte) error

	// WriteManifest stores the run manifest.
	WriteManifest(ctx context.Context, m *Manifest) error

	// URI returns the canonical URI for a stored name.
	URI(name string) string

	// Close releases any resources.
	Close() error
}

// FileInfo describes one generated workload file.
type FileInfo struct {
	Name        string `json:"name"`
	Checksum    string `json:"checksum"`
	ByteSize    int64  `json:"byte_size"`
	InsertStart int64  `json:"insert_start"`
	InsertCount int64  `json:"insert_count"`
}

// Manifest describes a complete generation run.
type Manifest struct {
	Files     []FileInfo   `json:"files"`
	Producer  ProducerInfo `json:"producer"`
	CreatedAt time.Time    `json:"created_at"`
}

// ProducerInfo describes the software that produced the files.
type ProducerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Encode returns the manifest as indented JSON.
func (m *Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Checksum returns the sha256 digest of data in the "sha256:<hex>" form used
// throughout the manifest.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// New creates a store for the given destination. Destinations carrying a URL
// scheme (file://, s3://, gs://) open a blob bucket; anything else is
// treated as a local directory.
func New(ctx context.Context, dest string) (ConfigStore, error) {
	if strings.Contains(dest, "://") {
		return NewBlobStore(ctx, dest)
	}
	return NewLocalStore(dest)
}
