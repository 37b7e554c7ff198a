package xml

import (
	"strings"

	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
)

// Ensure Escaper implements the interface.
var _ driven.Escaper = Escaper{}

var entityReplacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"&", "&amp;",
	"'", "&apos;",
	`"`, "&quot;",
)

// Escape replaces the five XML special characters with their named entities.
// All other characters, including control characters and non-ASCII text,
// pass through unchanged.
func Escape(text string) string {
	return entityReplacer.Replace(text)
}

// Escaper adapts Escape to the driven.Escaper port.
type Escaper struct{}

// Escape implements driven.Escaper.
func (Escaper) Escape(text string) string {
	return Escape(text)
}
