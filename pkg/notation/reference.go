package notation

import "strings"

// DefaultPrefix is the directory prefix image references carry in card
// spreadsheets, e.g. "HexstrikeImages/F2Ra.png".
const DefaultPrefix = "HexstrikeImages/"

const pngSuffix = ".png"

// Normalize strips surrounding whitespace, a leading prefix and a trailing
// ".png" from an image reference, both case-insensitively, leaving the bare
// spec. A bare spec is returned unchanged, so normalizing twice is the same
// as normalizing once.
func Normalize(ref, prefix string) string {
	s := strings.TrimSpace(ref)
	if prefix != "" && hasPrefixFold(s, prefix) {
		s = s[len(prefix):]
	}
	if hasSuffixFold(s, pngSuffix) {
		s = s[:len(s)-len(pngSuffix)]
	}
	return s
}

// IsReference reports whether cell looks like an image reference: it
// carries prefix and ends in ".png", both case-insensitively.
func IsReference(cell, prefix string) bool {
	s := strings.TrimSpace(cell)
	return hasPrefixFold(s, prefix) && hasSuffixFold(s, pngSuffix)
}

// FileName returns the output file name for a bare spec.
func FileName(spec string) string {
	return spec + pngSuffix
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
