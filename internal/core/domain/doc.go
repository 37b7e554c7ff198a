// Package domain defines the core entities for repoxml.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FileEntry: One exported file (relative path plus escaped content)
//   - IgnorePatternSet: The ordered glob patterns excluding paths from export
//   - ExportRequest / ExportResult: The input and outcome of one export run
//   - WalkResult: The entries collected by a tree walk
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
