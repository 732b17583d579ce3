package ports

import (
	"context"

	"github.com/bft-labs/vcfbatch/internal/domain"
)

// BatchSink persists one batch as an independent output file.
// Implementations handle directory creation, naming and encoding.
type BatchSink interface {
	// Save writes the batch and returns the file name it was written to.
	// Any error is unrecoverable for the run; a partially written file may
	// remain on disk.
	Save(ctx context.Context, b *domain.Batch) (string, error)
}
