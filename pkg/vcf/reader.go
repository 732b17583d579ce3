package vcf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
)

// CompressedSuffix marks BGZF-compressed VCF files. Detection is by file
// name only, not by content sniffing.
const CompressedSuffix = ".gz"

// maxLineBytes bounds a single VCF line. Cohort VCFs carry one column per
// sample, so lines far beyond bufio's default 64KiB token are routine.
const maxLineBytes = 64 * 1024 * 1024

// Reader is a lazy, fallible line sequence over a VCF file.
// It decompresses transparently when the path carries CompressedSuffix.
type Reader struct {
	sc         *bufio.Scanner
	closers    []io.Closer
	compressed bool
}

// Compressed reports whether the input is being BGZF-decoded.
func (r *Reader) Compressed() bool { return r.compressed }

// Open opens path as a line reader. Files ending in .gz are opened through
// the BGZF decoder; everything else is read as plain text. Open errors,
// including a failed BGZF header, are fatal for the run and returned here.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	r := &Reader{closers: []io.Closer{f}}
	var src io.Reader = f

	if strings.HasSuffix(path, CompressedSuffix) {
		bz, err := bgzf.NewReader(f, 0)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open bgzf %s: %w", path, err)
		}
		r.closers = []io.Closer{bz, f}
		r.compressed = true
		src = bz
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	r.sc = sc
	return r, nil
}

// Scan advances to the next line. It returns false at end of input or on a
// decode error; distinguish the two with Err.
func (r *Reader) Scan() bool {
	return r.sc.Scan()
}

// Text returns the current line without its trailing newline.
func (r *Reader) Text() string {
	return r.sc.Text()
}

// Err returns the first error encountered while scanning, or nil if the
// input was exhausted cleanly.
func (r *Reader) Err() error {
	if err := r.sc.Err(); err != nil {
		return fmt.Errorf("read line: %w", err)
	}
	return nil
}

// Close releases the underlying file and decoder. The first close error
// wins; remaining closers are still closed.
func (r *Reader) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
