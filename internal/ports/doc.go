// Package ports defines the interfaces that connect the splitting pipeline
// to its infrastructure adapters.
//
// The application layer (internal/app) depends only on these interfaces.
// Concrete implementations live in pkg/vcf (line source) and
// internal/adapters/fs (batch sink), which keeps the pipeline testable with
// in-memory fakes and the I/O swappable.
//
// # Ports
//
//   - [LineSource]: lazy fallible line sequence over one input file
//   - [BatchSink]: persists one batch as an independent output file
//   - [Logger]: structured logging abstraction
package ports
