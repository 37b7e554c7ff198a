package domain

// defaultIgnorePatterns are active on every run, before any user additions.
var defaultIgnorePatterns = []string{
	"node_modules",
	".git",
	"*.jpg",
	"*.jpeg",
	"*.png",
	"*.gif",
	"*.svg",
	"*.webp",
	"package-lock.json",
}

// DefaultIgnorePatterns returns a fresh copy of the built-in ignore patterns.
func DefaultIgnorePatterns() []string {
	out := make([]string, len(defaultIgnorePatterns))
	copy(out, defaultIgnorePatterns)
	return out
}

// IgnorePatternSet is the ordered list of glob patterns for one run.
// Matching is a logical OR; order only decides which pattern is reported.
type IgnorePatternSet []string

// NewIgnorePatternSet builds the defaults followed by each group of extras in order.
// Empty patterns are dropped.
func NewIgnorePatternSet(extra ...[]string) IgnorePatternSet {
	set := IgnorePatternSet(DefaultIgnorePatterns())
	for _, group := range extra {
		for _, p := range group {
			if p == "" {
				continue
			}
			set = append(set, p)
		}
	}
	return set
}

// Patterns returns a copy of the set as a plain slice.
func (s IgnorePatternSet) Patterns() []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
