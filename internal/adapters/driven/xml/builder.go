package xml

import (
	"strings"

	"github.com/custodia-labs/repoxml/internal/core/domain"
	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
)

// Ensure Builder implements the interface.
var _ driven.DocumentBuilder = (*Builder)(nil)

const (
	declaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	openRoot    = "<repository>\n"
	closeRoot   = "</repository>"
)

// Builder renders file entries as a <repository> document.
type Builder struct{}

// NewBuilder creates a document builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders entries in order. Content is expected to be escaped already.
func (b *Builder) Build(entries []domain.FileEntry) string {
	size := len(declaration) + len(openRoot) + len(closeRoot)
	for i := range entries {
		size += len(entries[i].Path) + len(entries[i].Content) + 64
	}

	var sb strings.Builder
	sb.Grow(size)

	sb.WriteString(declaration)
	sb.WriteString(openRoot)
	for i := range entries {
		sb.WriteString(`  <file path="`)
		sb.WriteString(entries[i].Path)
		sb.WriteString("\">\n")
		sb.WriteString("    <![CDATA[")
		sb.WriteString(entries[i].Content)
		sb.WriteString("]]>\n")
		sb.WriteString("  </file>\n")
	}
	sb.WriteString(closeRoot)

	return sb.String()
}
