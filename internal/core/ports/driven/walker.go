package driven

import (
	"context"

	"github.com/custodia-labs/repoxml/internal/core/domain"
)

// TreeWalker enumerates the regular files of a directory tree.
type TreeWalker interface {
	// CheckRoot verifies root exists and is a directory.
	// Returns domain.ErrRootNotFound or domain.ErrRootNotDirectory.
	CheckRoot(root string) error

	// Walk collects an entry for every regular file under root that the
	// matcher does not exclude. Per-entry failures are logged and counted,
	// never returned. Entries are sorted by path.
	Walk(ctx context.Context, root string, matcher IgnoreMatcher) (*domain.WalkResult, error)
}

// TextNormaliser converts raw file bytes into text.
type TextNormaliser interface {
	Normalise(raw []byte) string
}

// Escaper makes text safe to embed as XML character data.
type Escaper interface {
	Escape(text string) string
}
