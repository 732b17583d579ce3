package domain

import "errors"

// Domain errors returned by the public API; check with errors.Is.
var (
	// ErrInvalidBatchSize is returned when the configured batch size is below 1.
	ErrInvalidBatchSize = errors.New("vcfbatch: batch size must be at least 1")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("vcfbatch: invalid configuration")
)
