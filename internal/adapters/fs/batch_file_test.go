package fs

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bgzf"

	"github.com/bft-labs/vcfbatch/internal/domain"
	"github.com/bft-labs/vcfbatch/pkg/compress"
)

func sampleBatch(number int, compressed bool) *domain.Batch {
	return &domain.Batch{
		Number:     number,
		Header:     []byte("##fileformat=VCFv4.2\n#CHROM\tPOS\n"),
		Data:       []byte("1\t1000\n1\t2000\n"),
		DataLines:  2,
		Compressed: compressed,
	}
}

func TestSavePlain(t *testing.T) {
	dir := t.TempDir()
	w := NewBatchWriter(dir, compress.LevelNone)

	b := sampleBatch(1, false)
	name, err := w.Save(context.Background(), b)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "batch_01.vcf" {
		t.Errorf("Save returned name %q, want batch_01.vcf", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(data, b.Bytes()) {
		t.Errorf("file content = %q, want %q", data, b.Bytes())
	}
}

func TestSaveCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	w := NewBatchWriter(dir, compress.LevelNone)

	if _, err := w.Save(context.Background(), sampleBatch(1, false)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "batch_01.vcf")); err != nil {
		t.Fatalf("batch file missing after save: %v", err)
	}
}

func TestSaveCompressedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewBatchWriter(dir, compress.LevelBest)

	b := sampleBatch(3, true)
	name, err := w.Save(context.Background(), b)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "batch_03.vcf.gz" {
		t.Errorf("Save returned name %q, want batch_03.vcf.gz", name)
	}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	r, err := bgzf.NewReader(f, 1)
	if err != nil {
		t.Fatalf("bgzf reader: %v", err)
	}
	defer r.Close()

	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, b.Bytes()) {
		t.Errorf("decoded content = %q, want %q", decoded, b.Bytes())
	}
}

func TestSaveDirectoryCreationFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	// A path through a regular file cannot be created as a directory.
	w := NewBatchWriter(filepath.Join(blocker, "out"), compress.LevelNone)
	if _, err := w.Save(context.Background(), sampleBatch(1, false)); err == nil {
		t.Fatal("Save should fail when the output directory cannot be created")
	}
}

func TestSaveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewBatchWriter(t.TempDir(), compress.LevelNone)
	if _, err := w.Save(ctx, sampleBatch(1, false)); err == nil {
		t.Fatal("Save with canceled context should fail")
	}
}
