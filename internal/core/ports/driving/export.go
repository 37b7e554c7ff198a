package driving

import (
	"context"

	"github.com/custodia-labs/repoxml/internal/core/domain"
)

// ExportService turns a directory tree into a written XML document.
type ExportService interface {
	// Export validates the root, walks it, builds the document and writes it
	// to req.OutputPath.
	Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error)
}
