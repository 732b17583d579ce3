// Package batch groups classified VCF lines into fixed-size batches.
package batch

import (
	"bytes"

	"github.com/bft-labs/vcfbatch/internal/domain"
	"github.com/bft-labs/vcfbatch/pkg/vcf"
)

// FlushFunc receives each completed batch. A non-nil error aborts the run;
// the accumulator keeps the pending lines so the failure is observable.
type FlushFunc func(b *domain.Batch) error

// Accumulator consumes the classified line stream and builds batches.
//
// Header lines grow an append-only header block and never count toward the
// batch size. Data lines fill the current batch; when it reaches the
// configured size the batch is emitted with a snapshot of the header block
// taken at that moment, so metadata interleaved between data lines appears
// in every later batch.
type Accumulator struct {
	size       int
	compressed bool
	flush      FlushFunc

	header  bytes.Buffer
	current bytes.Buffer
	pending int

	batches     int
	dataLines   int
	headerLines int
}

// NewAccumulator creates an accumulator emitting batches of size data
// lines through flush. Returns domain.ErrInvalidBatchSize if size < 1.
func NewAccumulator(size int, compressed bool, flush FlushFunc) (*Accumulator, error) {
	if size < 1 {
		return nil, domain.ErrInvalidBatchSize
	}
	return &Accumulator{size: size, compressed: compressed, flush: flush}, nil
}

// Add routes one line. Header lines extend the header block; data lines
// extend the current batch, emitting it once it holds size lines.
func (a *Accumulator) Add(line string) error {
	if vcf.IsHeaderLine(line) {
		a.header.WriteString(line)
		a.header.WriteByte('\n')
		a.headerLines++
		return nil
	}

	a.current.WriteString(line)
	a.current.WriteByte('\n')
	a.pending++
	a.dataLines++

	if a.pending >= a.size {
		return a.emit()
	}
	return nil
}

// Flush emits the partial final batch, if any. Call after the input is
// exhausted; an input with no data lines emits nothing.
func (a *Accumulator) Flush() error {
	if a.pending == 0 {
		return nil
	}
	return a.emit()
}

func (a *Accumulator) emit() error {
	b := &domain.Batch{
		Number:     a.batches + 1,
		Header:     append([]byte(nil), a.header.Bytes()...),
		Data:       append([]byte(nil), a.current.Bytes()...),
		DataLines:  a.pending,
		Compressed: a.compressed,
	}
	if err := a.flush(b); err != nil {
		return err
	}
	a.batches++
	a.current.Reset()
	a.pending = 0
	return nil
}

// Batches returns the number of batches emitted so far.
func (a *Accumulator) Batches() int { return a.batches }

// DataLines returns the total number of data lines consumed.
func (a *Accumulator) DataLines() int { return a.dataLines }

// HeaderLines returns the total number of header lines consumed.
func (a *Accumulator) HeaderLines() int { return a.headerLines }
