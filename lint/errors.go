package lint

import "errors"

// Sentinel errors for checking files
var (
	// ErrUnsupportedFile is returned for files whose extension is not checked
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrInvalidFrontMatter is returned when the YAML front matter of a
	// Markdown file cannot be read
	ErrInvalidFrontMatter = errors.New("invalid front matter")
	// ErrReadFile is returned when a file cannot be read
	ErrReadFile = errors.New("failed to read file")
	// ErrInvalidPattern is returned for a malformed include or exclude glob
	ErrInvalidPattern = errors.New("invalid path pattern")
)
