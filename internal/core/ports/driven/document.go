package driven

import "github.com/custodia-labs/repoxml/internal/core/domain"

// DocumentBuilder assembles file entries into the output document.
type DocumentBuilder interface {
	// Build renders entries in the given order. It performs no I/O.
	Build(entries []domain.FileEntry) string
}

// DocumentWriter persists a rendered document.
type DocumentWriter interface {
	// Write stores document at path, replacing any existing file.
	Write(path string, document string) error
}
