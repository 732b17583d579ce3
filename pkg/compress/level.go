// Package compress maps user-facing compression level names onto the gzip
// numeric levels used by the BGZF encoder.
package compress

import (
	"compress/gzip"
	"strings"
)

// Level is the output compression setting for a split run.
// The zero value means no compression.
type Level int

const (
	// LevelNone disables output compression.
	LevelNone Level = iota

	// LevelFast favors speed over ratio.
	LevelFast

	// LevelDefault is the codec's default speed/ratio trade-off.
	LevelDefault

	// LevelBest favors ratio over speed.
	LevelBest
)

// ParseLevel parses a compression level name. Recognized names are "fast",
// "default" and "best", case-insensitive. An empty or unrecognized name
// yields LevelNone.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "fast":
		return LevelFast
	case "default":
		return LevelDefault
	case "best":
		return LevelBest
	default:
		return LevelNone
	}
}

// Enabled returns true if the level requests compression.
func (l Level) Enabled() bool {
	return l != LevelNone
}

// Gzip returns the gzip numeric level for the BGZF encoder.
func (l Level) Gzip() int {
	switch l {
	case LevelFast:
		return gzip.BestSpeed
	case LevelBest:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

// String returns the canonical level name.
func (l Level) String() string {
	switch l {
	case LevelFast:
		return "fast"
	case LevelDefault:
		return "default"
	case LevelBest:
		return "best"
	default:
		return "none"
	}
}
