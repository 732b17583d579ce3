package ports

import "github.com/bft-labs/vcfbatch/pkg/log"

// Logger is the structured logging port, re-exported from pkg/log so the
// application layer needs only one import.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors, re-exported for convenience.
var (
	String   = log.String
	Int      = log.Int
	Int64    = log.Int64
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
