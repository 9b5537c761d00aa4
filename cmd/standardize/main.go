package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/tirasundara/gwas-standardizer/internal/catalog"
	"github.com/tirasundara/gwas-standardizer/internal/config"
	"github.com/tirasundara/gwas-standardizer/internal/domain"
	"github.com/tirasundara/gwas-standardizer/internal/matcher"
	"github.com/tirasundara/gwas-standardizer/internal/platform/observability"
	"github.com/tirasundara/gwas-standardizer/internal/report"
	"github.com/tirasundara/gwas-standardizer/internal/repository"
	"github.com/tirasundara/gwas-standardizer/internal/service"
	"github.com/tirasundara/gwas-standardizer/pkg/fileutil"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Default()

	// Command-line flags
	var files string
	flag.StringVar(&files, "files", "", "Comma-separated paths to GWAS summary statistics files")
	flag.StringVar(&cfg.CatalogPath, "catalog", "", "Path to a YAML catalog (defaults to the built-in GWAS catalog)")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Match strategy: name (canonical name only) or aliases (name and aliases)")
	flag.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "Minimum similarity score (0-100) to accept a match")
	flag.StringVar(&cfg.Delimiter, "delimiter", cfg.Delimiter, "Field delimiter: comma, tab, semicolon, pipe, space or a single character")
	flag.IntVar(&cfg.PreviewRows, "preview", cfg.PreviewRows, "Number of data rows to include in the output (0 for none)")
	flag.IntVar(&cfg.MaxFiles, "max-files", cfg.MaxFiles, "Maximum number of files processed at once")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "Output format: json only for now")
	flag.StringVar(&cfg.OutputFile, "output", "", "Path to output file (if empty, writes to stdout)")
	flag.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Pretty print JSON output")

	flag.Parse()

	// Positional arguments are input files too
	cfg.Files = append(config.SplitFiles(files), flag.Args()...)

	if err := cfg.Validate(); err != nil {
		exitWithError(err.Error())
	}

	logger := observability.NewLogger(os.Stderr)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("standardization failed", zap.Error(err))
		exitWithError(err.Error())
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return err
		}
		cat = loaded
	}

	strategy, err := matcher.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	delimiter, err := fileutil.ParseDelimiter(cfg.Delimiter)
	if err != nil {
		return err
	}

	headerMatcher := matcher.New(cat,
		matcher.WithStrategy(strategy),
		matcher.WithThreshold(cfg.Threshold),
	)

	repos := make([]domain.HeaderRepository, 0, len(cfg.Files))
	for _, file := range cfg.Files {
		repos = append(repos, repository.NewCSVFileRepository(file, delimiter))
	}

	logger.Info("standardizing files",
		zap.Strings("files", cfg.Files),
		zap.String("strategy", strategy.Name()),
		zap.Int("threshold", cfg.Threshold),
		zap.Int("catalog_columns", cat.Len()),
	)

	svc := service.NewStandardizationService(headerMatcher, logger, service.Options{
		MaxFiles:    cfg.MaxFiles,
		PreviewRows: cfg.PreviewRows,
		NoPreview:   cfg.PreviewRows == 0,
	})

	results, err := svc.Standardize(ctx, repos...)
	if err != nil {
		return fmt.Errorf("standardization failed: %w", err)
	}

	// Format the output
	var formatter report.OutputFormatter
	switch cfg.Format {
	case "json":
		formatter = report.NewJSONFormatter(cfg.Pretty)

	// Can add other formatters later: csv, txt, etc
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Format)
	}

	output, err := formatter.Format(results)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Output the result
	if cfg.OutputFile != "" {
		outputFile := cfg.OutputFile

		// If no extension is provided, add the formatter's default extension
		if filepath.Ext(outputFile) == "" {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}

		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	// Write output to stdout
	fmt.Println(string(output))
	return nil
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
