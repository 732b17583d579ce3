// Package domain contains the core entities for vcfbatch.
//
// This is the innermost layer: it has no dependencies on the file system,
// compression codecs, or logging, and holds only the batch data model and
// its invariants.
//
// # Entities
//
//   - [Batch]: one output unit, a header-block snapshot plus bounded data lines
//
// Entities are plain values, testable without mocks or external systems.
package domain
