// Package filesystem walks a local directory tree and collects the files
// to export.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/repoxml/internal/core/domain"
	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
	"github.com/custodia-labs/repoxml/internal/logger"
)

// DefaultWorkers bounds concurrent entry visits within one directory.
const DefaultWorkers = 8

// Ensure Walker implements the interface.
var _ driven.TreeWalker = (*Walker)(nil)

// Walker enumerates regular files depth-first using an explicit stack of
// pending directories, so tree depth never grows the call stack.
type Walker struct {
	normaliser driven.TextNormaliser
	escaper    driven.Escaper
	log        driven.Logger
	workers    int
	readDir    func(name string) ([]fs.DirEntry, error)
}

// Option configures a Walker.
type Option func(*Walker)

// WithWorkers sets the per-directory concurrency. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(w *Walker) {
		if n > 0 {
			w.workers = n
		}
	}
}

// WithLogger sets the event sink. Defaults to the package logger.
func WithLogger(l driven.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.log = l
		}
	}
}

// New creates a walker that decodes file bytes with normaliser and escapes
// the resulting text with escaper.
func New(normaliser driven.TextNormaliser, escaper driven.Escaper, opts ...Option) *Walker {
	w := &Walker{
		normaliser: normaliser,
		escaper:    escaper,
		log:        logger.Default(),
		workers:    DefaultWorkers,
		readDir:    os.ReadDir,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CheckRoot verifies root exists and is a directory.
func (w *Walker) CheckRoot(root string) error {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrRootNotFound, root)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrRootNotDirectory, root)
	}
	return nil
}

type visitKind int

const (
	visitSkipped visitKind = iota
	visitIgnored
	visitFailed
	visitDir
	visitFile
)

type visitResult struct {
	kind  visitKind
	rel   string
	entry domain.FileEntry
}

// Walk collects every regular file under root that matcher does not exclude.
// Siblings are visited concurrently and joined before the walk moves on.
// Failures on individual entries are logged and counted, never returned; the
// only error is ctx cancellation, checked between directories.
func (w *Walker) Walk(ctx context.Context, root string, matcher driven.IgnoreMatcher) (*domain.WalkResult, error) {
	result := &domain.WalkResult{}
	pending := []string{""}

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		// Entries read before a failure are still visited.
		entries, err := w.readDir(filepath.Join(root, filepath.FromSlash(dir)))
		if err != nil {
			w.log.Error("Error reading directory %s: %v", displayPath(root, dir), err)
			result.Failed++
		}

		visits := make([]visitResult, len(entries))
		var g errgroup.Group
		g.SetLimit(w.workers)
		for i, entry := range entries {
			g.Go(func() error {
				visits[i] = w.visit(root, dir, entry, matcher)
				return nil
			})
		}
		_ = g.Wait()

		// Push in reverse so subdirectories pop in directory order.
		for i := len(visits) - 1; i >= 0; i-- {
			if visits[i].kind == visitDir {
				pending = append(pending, visits[i].rel)
			}
		}
		for i := range visits {
			switch visits[i].kind {
			case visitFile:
				result.Entries = append(result.Entries, visits[i].entry)
			case visitIgnored:
				result.Ignored++
			case visitFailed:
				result.Failed++
			}
		}
	}

	slices.SortFunc(result.Entries, func(a, b domain.FileEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return result, nil
}

// visit classifies one directory entry. The ignore check runs before any
// stat or read, so excluded entries are never touched.
func (w *Walker) visit(root, dir string, entry fs.DirEntry, matcher driven.IgnoreMatcher) visitResult {
	rel := path.Join(dir, entry.Name())

	if pattern, ignored := matcher.Ignored(rel); ignored {
		w.log.Info("Ignoring %s (matched %s)", rel, pattern)
		return visitResult{kind: visitIgnored, rel: rel}
	}

	full := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil {
		w.log.Error("Error processing file %s: %v", rel, err)
		return visitResult{kind: visitFailed, rel: rel}
	}

	switch {
	case info.IsDir():
		if entry.Type()&fs.ModeSymlink != 0 {
			w.log.Debug("Skipping symlinked directory %s", rel)
			return visitResult{kind: visitSkipped, rel: rel}
		}
		return visitResult{kind: visitDir, rel: rel}

	case info.Mode().IsRegular():
		data, err := os.ReadFile(full)
		if err != nil {
			w.log.Error("Error processing file %s: %v", rel, err)
			return visitResult{kind: visitFailed, rel: rel}
		}
		fileEntry := domain.FileEntry{
			Path:    rel,
			Content: w.escaper.Escape(w.normaliser.Normalise(data)),
		}
		return visitResult{kind: visitFile, rel: rel, entry: fileEntry}

	default:
		w.log.Debug("Skipping %s: not a regular file (%s)", rel, info.Mode().Type())
		return visitResult{kind: visitSkipped, rel: rel}
	}
}

func displayPath(root, rel string) string {
	if rel == "" {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}
