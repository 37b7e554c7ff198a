package domain

import "errors"

// Domain errors represent export failures.
// These are distinct from per-entry traversal errors, which never escape the walker.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRootNotFound indicates the directory to export does not exist.
	ErrRootNotFound = errors.New("directory does not exist")

	// ErrRootNotDirectory indicates the export root exists but is not a directory.
	ErrRootNotDirectory = errors.New("not a directory")

	// ErrWriteOutput indicates the output document could not be written.
	ErrWriteOutput = errors.New("write output")

	// ErrConfig indicates the configuration file could not be read or parsed.
	ErrConfig = errors.New("invalid configuration")
)
