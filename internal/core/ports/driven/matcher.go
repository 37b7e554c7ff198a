package driven

import "github.com/custodia-labs/repoxml/internal/core/domain"

// PathMatcher decides whether a single glob pattern matches a relative path.
type PathMatcher interface {
	// Match reports whether pattern matches relPath, either as a full path
	// or, for patterns without a slash, against the base name alone.
	Match(relPath, pattern string) bool
}

// IgnoreMatcher evaluates a whole ignore configuration against a path.
type IgnoreMatcher interface {
	// Ignored reports whether relPath is excluded and, if so, which pattern
	// matched first.
	Ignored(relPath string) (pattern string, ignored bool)
}

// IgnoreMatcherFactory builds the IgnoreMatcher for one export run.
type IgnoreMatcherFactory interface {
	// New compiles patterns for the tree at root. When useGitignore is set,
	// rules from root/.gitignore are also honoured.
	New(root string, patterns domain.IgnorePatternSet, useGitignore bool) (IgnoreMatcher, error)
}
