package errors

import (
	"strings"
	"unicode"
)

// maxFilenameLength bounds generated output names. Most filesystems cap a
// single path element at 255 bytes; ".png" takes four of them.
const maxFilenameLength = 250

// ValidateFilename checks that name is safe to use as a single output file
// name. Diagram files are named after their spec, so the spec itself must not
// smuggle in directories or control characters.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 250 bytes
//   - No null bytes or control characters
//   - No path separators (/ or \)
//   - Not "." or ".."
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	if len(name) > maxFilenameLength {
		return New(ErrCodeInvalidPath, "file name too long (max %d characters)", maxFilenameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "file name cannot be %q", name)
	}

	return nil
}

// ValidateDir validates an output directory argument.
// Relative and absolute paths are both accepted; only empty values and
// embedded control characters are rejected.
func ValidateDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}
	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}
	return nil
}
