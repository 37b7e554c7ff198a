// Package plaintext decodes file bytes into text for export.
package plaintext

import (
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TextNormaliser = (*Normaliser)(nil)

// Normaliser reads file content as UTF-8 text.
// Invalid byte sequences, including those in binary files, are replaced with
// U+FFFD so the result is always valid UTF-8. A byte order mark is kept.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise converts raw bytes to text.
func (n *Normaliser) Normalise(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "\uFFFD")
	}
	return string(decoded)
}
