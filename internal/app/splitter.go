// Package app orchestrates the splitting pipeline: line source →
// classifier → accumulator → batch sink, in one sequential pass.
package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/vcfbatch/internal/batch"
	"github.com/bft-labs/vcfbatch/internal/domain"
	"github.com/bft-labs/vcfbatch/internal/ports"
	"github.com/bft-labs/vcfbatch/pkg/compress"
)

// SplitterConfig contains the parameters of one split run.
type SplitterConfig struct {
	InputPath string
	BatchSize int
	OutputDir string
	Level     compress.Level
}

// OpenSource opens an input path as a line source.
type OpenSource func(path string) (ports.LineSource, error)

// Splitter drives one single-pass split of an input file.
type Splitter struct {
	config SplitterConfig
	open   OpenSource
	sink   ports.BatchSink
	logger ports.Logger
}

// Result reports the counts of a completed run.
type Result struct {
	Batches     int
	DataLines   int
	HeaderLines int
}

// NewSplitter creates a splitter with the given dependencies.
func NewSplitter(config SplitterConfig, open OpenSource, sink ports.BatchSink, logger ports.Logger) *Splitter {
	return &Splitter{
		config: config,
		open:   open,
		sink:   sink,
		logger: logger,
	}
}

// Run executes the split. It reads the input once, writing each completed
// batch before the next line is read, and returns the final counts.
// Any open, decode or write error aborts the run; batches already written
// stay on disk.
func (s *Splitter) Run(ctx context.Context) (Result, error) {
	src, err := s.open(s.config.InputPath)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	compressed := false
	if c, ok := src.(interface{ Compressed() bool }); ok {
		compressed = c.Compressed()
	}
	s.logger.Info("reading input",
		ports.String("path", s.config.InputPath),
		ports.Bool("compressed", compressed))

	acc, err := batch.NewAccumulator(s.config.BatchSize, s.config.Level.Enabled(), func(b *domain.Batch) error {
		name, err := s.sink.Save(ctx, b)
		if err != nil {
			return fmt.Errorf("save batch %d: %w", b.Number, err)
		}
		s.logger.Info("saved batch",
			ports.String("file", name),
			ports.Int("data_lines", b.DataLines))
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	for src.Scan() {
		select {
		case <-ctx.Done():
			return s.result(acc), ctx.Err()
		default:
		}
		if err := acc.Add(src.Text()); err != nil {
			return s.result(acc), err
		}
	}
	if err := src.Err(); err != nil {
		return s.result(acc), err
	}

	if err := acc.Flush(); err != nil {
		return s.result(acc), err
	}

	res := s.result(acc)
	s.logger.Info("split complete",
		ports.Int("batches", res.Batches),
		ports.Int("batch_size", s.config.BatchSize),
		ports.Int("data_lines", res.DataLines),
		ports.Int("header_lines", res.HeaderLines),
		ports.String("output_dir", s.config.OutputDir))
	return res, nil
}

func (s *Splitter) result(acc *batch.Accumulator) Result {
	return Result{
		Batches:     acc.Batches(),
		DataLines:   acc.DataLines(),
		HeaderLines: acc.HeaderLines(),
	}
}
