package ports

// LineSource is a lazy, fallible sequence of text lines from one input
// file. Callers never learn whether the underlying stream is compressed.
type LineSource interface {
	// Scan advances to the next line, returning false at end of input or
	// on a decode error.
	Scan() bool

	// Text returns the current line without its trailing newline.
	Text() string

	// Err returns the first error encountered while scanning, or nil if
	// the input was exhausted cleanly.
	Err() error

	// Close releases the underlying resources.
	Close() error
}
