package vcfbatch

import (
	"github.com/bft-labs/vcfbatch/internal/ports"
	"github.com/bft-labs/vcfbatch/pkg/log"
)

// Logger is the structured logging interface accepted by WithLogger.
type Logger = log.Logger

// LineSource yields the lines of a VCF input one at a time. Custom sources
// passed through WithSource replace the default file-backed reader.
type LineSource = ports.LineSource

// BatchSink persists a completed batch and returns the name it was saved
// under. Custom sinks passed through WithSink replace the default file
// writer.
type BatchSink = ports.BatchSink

// Option configures optional behavior of a run.
type Option func(*options)

// options holds the optional configuration for a run.
type options struct {
	logger log.Logger
	open   func(path string) (LineSource, error)
	sink   BatchSink
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{logger: log.NewNoopLogger()}
}

// WithLogger sets a custom logger for progress and summary output.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSource sets a custom opener for the input lines. If not provided,
// Config.InputPath is opened from the filesystem, with a .gz suffix
// selecting BGZF decode.
func WithSource(open func(path string) (LineSource, error)) Option {
	return func(o *options) {
		if open != nil {
			o.open = open
		}
	}
}

// WithSink sets a custom destination for completed batches. If not
// provided, batches are written as files under Config.OutputDir.
func WithSink(sink BatchSink) Option {
	return func(o *options) {
		if sink != nil {
			o.sink = sink
		}
	}
}
