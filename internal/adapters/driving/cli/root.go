// Package cli implements the repoxml command line.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repoxml/internal/adapters/driven/file"
	"github.com/custodia-labs/repoxml/internal/adapters/driven/ignore"
	"github.com/custodia-labs/repoxml/internal/adapters/driven/xml"
	"github.com/custodia-labs/repoxml/internal/connectors/filesystem"
	"github.com/custodia-labs/repoxml/internal/core/domain"
	"github.com/custodia-labs/repoxml/internal/core/ports/driven"
	"github.com/custodia-labs/repoxml/internal/core/ports/driving"
	"github.com/custodia-labs/repoxml/internal/core/services"
	"github.com/custodia-labs/repoxml/internal/logger"
	"github.com/custodia-labs/repoxml/internal/normalisers/plaintext"
)

// openConfig loads the configuration file. An explicitly named file must
// exist; the default one may be absent. Replaced in tests.
var openConfig = func(path string) (driven.ConfigStore, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrConfig, err)
		}
	}
	return file.NewConfigStore(path)
}

// newExportService wires the production adapters. Replaced in tests.
var newExportService = func(log driven.Logger, workers int) driving.ExportService {
	return services.NewExportService(
		filesystem.New(plaintext.New(), xml.Escaper{},
			filesystem.WithWorkers(workers),
			filesystem.WithLogger(log),
		),
		ignore.NewFactory(log),
		xml.NewBuilder(),
		file.NewDocumentWriter(),
		log,
	)
}

type rootOptions struct {
	ignore     []string
	configPath string
	gitignore  bool
	verbose    bool
	workers    int
}

// NewRootCmd builds the repoxml command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "repoxml <directory-path> [--ignore pattern1 pattern2 ...]",
		Short: "Export a directory tree as a single XML document",
		Long: `Reads every regular file under a directory and writes them to
repository.xml in the current working directory, one <file> element per file.

Paths matching an ignore pattern are skipped. The built-in patterns are:
  ` + fmt.Sprint(domain.DefaultIgnorePatterns()) + `

Every argument after --ignore is taken as an additional pattern.`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}
	cmd.SetVersionTemplate("repoxml version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringArrayVar(&opts.ignore, "ignore", nil, "additional glob patterns to exclude")
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default ~/.repoxml/config.toml)")
	flags.BoolVar(&opts.gitignore, "gitignore", false, "also honour the directory's .gitignore")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every pattern test and ignored path")
	flags.IntVar(&opts.workers, "workers", filesystem.DefaultWorkers, "concurrent entries per directory")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *rootOptions) error {
	// Arguments are valid; further errors are not usage errors.
	cmd.SilenceUsage = true

	cfg, err := openConfig(opts.configPath)
	if err != nil {
		return err
	}

	log := logger.New(cmd.ErrOrStderr(), opts.verbose || cfg.GetBool(file.KeyVerbose))
	log.Section("repoxml")
	root := args[0]
	log.Debug("Root: %s", root)
	if len(args) > 1 {
		log.Debug("Ignoring extra arguments: %v", args[1:])
	}
	log.Debug("Configuration: %s", cfg.Path())

	workers := opts.workers
	if !cmd.Flags().Changed("workers") {
		if n := cfg.GetInt(file.KeyWorkers); n > 0 {
			workers = n
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	req := domain.ExportRequest{
		Root:         root,
		Patterns:     domain.NewIgnorePatternSet(cfg.GetStringSlice(file.KeyIgnorePatterns), opts.ignore),
		UseGitignore: opts.gitignore || cfg.GetBool(file.KeyGitignore),
		OutputPath:   filepath.Join(cwd, domain.OutputFileName),
	}

	result, err := newExportService(log, workers).Export(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render(out, successStyle, "Repository XML generated at: "+result.OutputPath))
	return nil
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return execute(NewRootCmd(), os.Args[1:])
}

func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(normalizeArgs(args))
	err := cmd.Execute()
	if err != nil {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, render(errOut, errorStyle, "Error: "+err.Error()))
	}
	return err
}
