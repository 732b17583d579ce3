// Package vcfbatch splits large VCF files into batches of smaller VCF
// files, each containing the full header block and a fixed number of data
// lines, optionally BGZF-compressed.
//
// Example usage:
//
//	cfg := vcfbatch.DefaultConfig()
//	cfg.InputPath = "cohort.vcf.gz"
//	cfg.OutputDir = "batches"
//	cfg.Compression = compress.LevelBest
//	res, err := vcfbatch.Run(context.Background(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Batches)
package vcfbatch

import (
	"context"
	"fmt"

	"github.com/bft-labs/vcfbatch/internal/adapters/fs"
	"github.com/bft-labs/vcfbatch/internal/app"
	"github.com/bft-labs/vcfbatch/internal/domain"
	"github.com/bft-labs/vcfbatch/internal/ports"
	"github.com/bft-labs/vcfbatch/pkg/compress"
	"github.com/bft-labs/vcfbatch/pkg/vcf"
)

// DefaultBatchSize is the number of data lines per batch when the caller
// does not set one.
const DefaultBatchSize = 25000

// Config holds the parameters of one split run. Use DefaultConfig() for
// sensible defaults; InputPath and OutputDir must always be set.
type Config struct {
	// InputPath is the VCF file to split; a .gz suffix selects BGZF decode.
	InputPath string

	// OutputDir receives the batch files; created if missing.
	OutputDir string

	// BatchSize is the number of data lines per batch (last batch may be
	// smaller). Must be at least 1.
	BatchSize int

	// Compression is the output encoding level; LevelNone writes plain text.
	Compression compress.Level
}

// Result reports the counts of a completed run.
type Result = app.Result

// Batch is one header-plus-data unit handed to a BatchSink.
type Batch = domain.Batch

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{BatchSize: DefaultBatchSize}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input path is required", domain.ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", domain.ErrInvalidConfig)
	}
	if c.BatchSize < 1 {
		return domain.ErrInvalidBatchSize
	}
	return nil
}

// Splitter is a validated, configured split pipeline. Create one with New
// when the same configuration is run more than once; Run is the one-shot
// shorthand.
type Splitter struct {
	cfg  Config
	opts options
}

// New validates cfg, applies the options and returns a Splitter ready to
// run.
func New(cfg Config, opts ...Option) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Splitter{cfg: cfg, opts: o}, nil
}

// Run splits the configured input in one sequential pass and returns the
// final counts on success. Any open, decode, directory-creation or write
// error aborts the run; batches saved before the failure stay in place.
func (s *Splitter) Run(ctx context.Context) (Result, error) {
	open := s.opts.open
	if open == nil {
		open = openSource
	}
	sink := s.opts.sink
	if sink == nil {
		sink = fs.NewBatchWriter(s.cfg.OutputDir, s.cfg.Compression)
	}

	splitter := app.NewSplitter(
		app.SplitterConfig{
			InputPath: s.cfg.InputPath,
			BatchSize: s.cfg.BatchSize,
			OutputDir: s.cfg.OutputDir,
			Level:     s.cfg.Compression,
		},
		open,
		sink,
		s.opts.logger,
	)
	return splitter.Run(ctx)
}

// Run splits cfg.InputPath into batch files under cfg.OutputDir. It is
// shorthand for New followed by Splitter.Run.
func Run(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	s, err := New(cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(ctx)
}

// openSource adapts vcf.Open to the pipeline's line-source port.
func openSource(path string) (ports.LineSource, error) {
	return vcf.Open(path)
}
