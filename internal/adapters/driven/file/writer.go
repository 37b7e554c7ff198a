package file

import (
	"fmt"
	"os"

	"github.com/custodia-labs/repoxml/internal/core/domain"
	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
)

// Ensure DocumentWriter implements the interface.
var _ driven.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter writes documents to the local filesystem in one call.
// There is no partial-write recovery.
type DocumentWriter struct{}

// NewDocumentWriter creates a document writer.
func NewDocumentWriter() *DocumentWriter {
	return &DocumentWriter{}
}

// Write stores document at path with mode 0644, replacing any existing file.
func (w *DocumentWriter) Write(path string, document string) error {
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWriteOutput, err)
	}
	return nil
}
