package domain

// OutputFileName is the fixed name of the generated document.
const OutputFileName = "repository.xml"

// ExportRequest describes one export run.
type ExportRequest struct {
	// Root is the directory to export.
	Root string

	// Patterns are the ignore globs, defaults included.
	Patterns IgnorePatternSet

	// UseGitignore additionally honours the root's .gitignore file.
	UseGitignore bool

	// OutputPath is where the document is written.
	OutputPath string
}

// Validate checks the request has the fields an export needs.
func (r ExportRequest) Validate() error {
	if r.Root == "" {
		return ErrInvalidInput
	}
	if r.OutputPath == "" {
		return ErrInvalidInput
	}
	return nil
}

// WalkResult holds the entries collected from a tree, sorted by path.
type WalkResult struct {
	Entries []FileEntry

	// Ignored counts entries skipped by an ignore pattern.
	Ignored int

	// Failed counts entries dropped because they could not be stat'ed or read.
	Failed int
}

// ExportResult summarises a completed export.
type ExportResult struct {
	// OutputPath is the absolute path of the written document.
	OutputPath string

	// Files is the number of <file> elements written.
	Files int

	Ignored int
	Failed  int
}
