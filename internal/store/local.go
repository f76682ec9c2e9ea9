package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes rendered files to a local directory.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates the directory if needed and returns a store over it.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", baseDir, err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Write stores one file atomically using temp file + rename.
func (s *LocalStore) Write(ctx context.Context, name string, data []byte) error {
	path := filepath.Join(s.baseDir, name)
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		// Clean up temp file on rename failure
		os.Remove(tempPath)
		return fmt.Errorf("rename %s to %s: %w", tempPath, path, err)
	}

	return nil
}

// WriteManifest stores the run manifest alongside the generated files.
func (s *LocalStore) WriteManifest(ctx context.Context, m *Manifest) error {
	data, err := m.Encode()
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return s.Write(ctx, ManifestName, data)
}

// URI returns the canonical URI for the given name.
func (s *LocalStore) URI(name string) string {
	return "file://" + filepath.Join(s.baseDir, name)
}

// Close is a no-op for local storage.
func (s *LocalStore) Close() error {
	return nil
}
