package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Open opens a benchmark log for reading. Gzip-compressed logs are detected
// by their magic bytes and decompressed transparently; the extension is not
// consulted. The caller must close the returned reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}

	br := bufio.NewReader(f)

	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader for %s: %w", path, err)
		}
		return &gzipLog{zr: zr, f: f}, nil
	}

	// Peek errors (e.g. empty file) fall through; the scanner will surface
	// them or read nothing.
	return &plainLog{br: br, f: f}, nil
}

type plainLog struct {
	br *bufio.Reader
	f  *os.File
}

func (l *plainLog) Read(p []byte) (int, error) { return l.br.Read(p) }
func (l *plainLog) Close() error               { return l.f.Close() }

type gzipLog struct {
	zr *gzip.Reader
	f  *os.File
}

func (l *gzipLog) Read(p []byte) (int, error) { return l.zr.Read(p) }

func (l *gzipLog) Close() error {
	zerr := l.zr.Close()
	ferr := l.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}
