package memory

import (
	"sync"

	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
)

// Ensure DocumentWriter implements the interface.
var _ driven.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter keeps written documents in memory, keyed by path.
type DocumentWriter struct {
	mu        sync.RWMutex
	documents map[string]string

	// Err, when set, is returned by every Write.
	Err error
}

// NewDocumentWriter creates a new in-memory document writer.
func NewDocumentWriter() *DocumentWriter {
	return &DocumentWriter{
		documents: make(map[string]string),
	}
}

// Write stores document under path, replacing any previous one.
func (w *DocumentWriter) Write(path string, document string) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.documents[path] = document
	return nil
}

// Document returns the document written to path.
func (w *DocumentWriter) Document(path string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	doc, ok := w.documents[path]
	return doc, ok
}

// Len returns the number of stored documents.
func (w *DocumentWriter) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.documents)
}
