package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/custodia-labs/repoxml/internal/core/domain"
	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.IgnoreMatcherFactory = (*Factory)(nil)

// Factory compiles a Matcher for each export run.
type Factory struct {
	glob driven.PathMatcher
	log  driven.Logger
}

// NewFactory creates a matcher factory reporting to log.
func NewFactory(log driven.Logger) *Factory {
	return &Factory{glob: GlobMatcher{}, log: log}
}

// New builds a Matcher for the tree at root.
// Malformed patterns are reported once and dropped. A missing .gitignore is
// not an error; an unreadable one is.
func (f *Factory) New(root string, patterns domain.IgnorePatternSet, useGitignore bool) (driven.IgnoreMatcher, error) {
	m := &Matcher{
		patterns: make([]string, 0, len(patterns)),
		glob:     f.glob,
		log:      f.log,
	}

	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			f.log.Warn("Skipping malformed ignore pattern %q", p)
			continue
		}
		m.patterns = append(m.patterns, p)
	}

	if !useGitignore {
		return m, nil
	}

	gitignorePath := filepath.Join(root, GitignorePattern)
	git, err := gitignore.CompileIgnoreFile(gitignorePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		f.log.Debug("No .gitignore at %s", gitignorePath)
	case err != nil:
		return nil, fmt.Errorf("load %s: %w", gitignorePath, err)
	default:
		f.log.Debug("Loaded .gitignore rules from %s", gitignorePath)
		m.git = git
	}

	return m, nil
}
