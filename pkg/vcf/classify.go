package vcf

// IsHeaderLine reports whether line is a VCF metadata line. Header lines
// start with '#'; the line is checked as-is, so leading whitespace before
// the marker does not count.
func IsHeaderLine(line string) bool {
	return len(line) > 0 && line[0] == '#'
}
