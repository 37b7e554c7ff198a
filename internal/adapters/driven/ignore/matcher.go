package ignore

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
)

// GitignorePattern is reported as the matching pattern for .gitignore hits.
const GitignorePattern = ".gitignore"

// Ensure the matchers implement the interfaces.
var (
	_ driven.PathMatcher   = GlobMatcher{}
	_ driven.IgnoreMatcher = (*Matcher)(nil)
)

// GlobMatcher matches one glob pattern against a relative path.
// A path segment starting with "." only matches a pattern segment that
// starts with a literal ".", and "**" never crosses such a segment.
type GlobMatcher struct{}

// Match reports whether pattern matches relPath as a full path, or, when the
// pattern has no slash, whether it matches the base name of relPath.
// Malformed patterns never match.
func (GlobMatcher) Match(relPath, pattern string) bool {
	relPath = filepath.ToSlash(relPath)
	if matchSegments(strings.Split(pattern, "/"), strings.Split(relPath, "/")) {
		return true
	}
	if strings.Contains(pattern, "/") {
		return false
	}
	return matchSegment(pattern, path.Base(relPath))
}

func matchSegments(pattern, segments []string) bool {
	if len(pattern) == 0 {
		return len(segments) == 0
	}
	if pattern[0] == "**" {
		for i := 0; i <= len(segments); i++ {
			if matchSegments(pattern[1:], segments[i:]) {
				return true
			}
			if i < len(segments) && isHidden(segments[i]) {
				return false
			}
		}
		return false
	}
	if len(segments) == 0 || !matchSegment(pattern[0], segments[0]) {
		return false
	}
	return matchSegments(pattern[1:], segments[1:])
}

func matchSegment(pattern, name string) bool {
	if isHidden(name) && !strings.HasPrefix(pattern, ".") {
		return false
	}
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Matcher evaluates an ordered pattern list, then optional .gitignore rules.
type Matcher struct {
	patterns []string
	glob     driven.PathMatcher
	git      *gitignore.GitIgnore
	log      driven.Logger
}

// Ignored returns the first pattern matching relPath.
// Every test performed is reported to the logger at debug level.
func (m *Matcher) Ignored(relPath string) (string, bool) {
	for _, p := range m.patterns {
		matched := m.glob.Match(relPath, p)
		m.log.Debug("Checking %s against %s: %t", relPath, p, matched)
		if matched {
			return p, true
		}
	}

	if m.git != nil {
		matched := m.git.MatchesPath(filepath.ToSlash(relPath))
		m.log.Debug("Checking %s against %s: %t", relPath, GitignorePattern, matched)
		if matched {
			return GitignorePattern, true
		}
	}

	return "", false
}

// Patterns returns the glob patterns this matcher evaluates, in order.
func (m *Matcher) Patterns() []string {
	out := make([]string, len(m.patterns))
	copy(out, m.patterns)
	return out
}
