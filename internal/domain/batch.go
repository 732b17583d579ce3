package domain

import "fmt"

// Batch is one output unit of a split run: a snapshot of the header block
// taken at flush time, plus up to batch-size data lines.
// Batches are numbered sequentially starting at 1 and never reused.
type Batch struct {
	// Number is the 1-based sequence number of the batch within the run.
	Number int

	// Header is the full header block accumulated up to the flush point,
	// each line newline-terminated.
	Header []byte

	// Data contains the batch's data lines, each newline-terminated.
	Data []byte

	// DataLines is the number of data lines in Data.
	DataLines int

	// Compressed reports whether the batch will be BGZF-encoded on disk.
	Compressed bool
}

// FileName returns the deterministic output file name for the batch:
// batch_<NN>.vcf, zero-padded to at least two digits, with a .gz suffix
// when the batch is compressed. Numbers beyond 99 widen naturally.
func (b *Batch) FileName() string {
	name := fmt.Sprintf("batch_%02d.vcf", b.Number)
	if b.Compressed {
		name += ".gz"
	}
	return name
}

// Bytes returns the full file content of the batch: the header block
// followed by the data lines.
func (b *Batch) Bytes() []byte {
	out := make([]byte, 0, len(b.Header)+len(b.Data))
	out = append(out, b.Header...)
	out = append(out, b.Data...)
	return out
}

// Empty returns true if the batch holds no data lines.
func (b *Batch) Empty() bool {
	return b.DataLines == 0
}
