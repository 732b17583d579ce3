// Package fs contains file-system adapters for the splitting pipeline.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/biogo/hts/bgzf"

	"github.com/bft-labs/vcfbatch/internal/domain"
	"github.com/bft-labs/vcfbatch/pkg/compress"
)

// BatchWriter implements ports.BatchSink by writing each batch to its own
// file in the output directory, BGZF-encoding when a level is set.
type BatchWriter struct {
	dir   string
	level compress.Level
}

// NewBatchWriter creates a writer targeting dir with the given level.
func NewBatchWriter(dir string, level compress.Level) *BatchWriter {
	return &BatchWriter{dir: dir, level: level}
}

// Save persists the batch and returns its file name. The output directory
// is created on first use, missing parents included. Compressed batches are
// encoded fully in memory and written in one call; each file is an
// independent BGZF stream with no shared state across batches.
func (w *BatchWriter) Save(ctx context.Context, b *domain.Batch) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	payload := b.Bytes()
	if w.level.Enabled() {
		var err error
		payload, err = w.encode(payload)
		if err != nil {
			return "", fmt.Errorf("encode batch %d: %w", b.Number, err)
		}
	}

	name := b.FileName()
	if err := os.WriteFile(filepath.Join(w.dir, name), payload, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// encode BGZF-compresses contents into memory. Close flushes the trailing
// block and the EOF marker, so it must precede reading the buffer.
func (w *BatchWriter) encode(contents []byte) ([]byte, error) {
	var buf bytes.Buffer
	bz, err := bgzf.NewWriterLevel(&buf, w.level.Gzip(), runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, err
	}
	if _, err := bz.Write(contents); err != nil {
		_ = bz.Close()
		return nil, err
	}
	if err := bz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
