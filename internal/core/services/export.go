package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/repoxml/internal/core/domain"
	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
	"github.com/custodia-labs/repoxml/internal/core/ports/driving"
	"github.com/custodia-labs/repoxml/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService runs one export: validate root, walk, build, write.
type ExportService struct {
	walker   driven.TreeWalker
	matchers driven.IgnoreMatcherFactory
	builder  driven.DocumentBuilder
	writer   driven.DocumentWriter
	log      driven.Logger
}

// NewExportService creates a new export service.
// A nil log falls back to the package logger.
func NewExportService(
	walker driven.TreeWalker,
	matchers driven.IgnoreMatcherFactory,
	builder driven.DocumentBuilder,
	writer driven.DocumentWriter,
	log driven.Logger,
) *ExportService {
	if log == nil {
		log = logger.Default()
	}
	return &ExportService{
		walker:   walker,
		matchers: matchers,
		builder:  builder,
		writer:   writer,
		log:      log,
	}
}

// Export writes the document for req.Root to req.OutputPath.
// Invalid roots and write failures are returned; per-file failures are not.
func (s *ExportService) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	if err := s.walker.CheckRoot(req.Root); err != nil {
		return nil, err
	}

	s.log.Debug("Ignore patterns: %v", req.Patterns.Patterns())
	matcher, err := s.matchers.New(req.Root, req.Patterns, req.UseGitignore)
	if err != nil {
		return nil, fmt.Errorf("build ignore matcher: %w", err)
	}

	walked, err := s.walker.Walk(ctx, req.Root, matcher)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", req.Root, err)
	}
	s.log.Info("Collected %d files (%d ignored, %d failed)", len(walked.Entries), walked.Ignored, walked.Failed)

	document := s.builder.Build(walked.Entries)
	if err := s.writer.Write(req.OutputPath, document); err != nil {
		return nil, err
	}

	return &domain.ExportResult{
		OutputPath: req.OutputPath,
		Files:      len(walked.Entries),
		Ignored:    walked.Ignored,
		Failed:     walked.Failed,
	}, nil
}
