package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/gwas-standardizer/internal/catalog"
	"github.com/tirasundara/gwas-standardizer/internal/domain"
	"github.com/tirasundara/gwas-standardizer/internal/matcher"
	"github.com/tirasundara/gwas-standardizer/internal/repository"
	"go.uber.org/zap"
)

const (
	DefaultMaxFiles    = 3
	DefaultPreviewRows = 6
)

// ErrTooManyFiles is returned when more files are submitted than the service accepts at once
var ErrTooManyFiles = errors.New("too many files")

// Options tunes a StandardizationService. A non-positive MaxFiles or PreviewRows selects the default;
// NoPreview reads no data rows at all
type Options struct {
	MaxFiles    int
	PreviewRows int
	NoPreview   bool
}

// catalogSource is implemented by matchers that expose the catalog they map onto
type catalogSource interface {
	Catalog() *catalog.Catalog
}

// StandardizationService orchestrates the standardization of one or more input files
type StandardizationService struct {
	matcher     domain.HeaderMatcher
	catalog     *catalog.Catalog
	logger      *zap.Logger
	maxFiles    int
	previewRows int
}

// NewStandardizationService creates a new StandardizationService. A nil headerMatcher selects
// the default matcher. Coverage and column order follow the matcher's catalog, or the default
// catalog when the matcher does not expose one
func NewStandardizationService(
	headerMatcher domain.HeaderMatcher,
	logger *zap.Logger,
	opts Options,
) *StandardizationService {
	if headerMatcher == nil {
		headerMatcher = matcher.New(nil)
	}
	cat := catalog.Default()
	if src, ok := headerMatcher.(catalogSource); ok && src.Catalog() != nil {
		cat = src.Catalog()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = DefaultMaxFiles
	}
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = DefaultPreviewRows
	}
	if opts.NoPreview {
		opts.PreviewRows = 0
	}

	return &StandardizationService{
		matcher:     headerMatcher,
		catalog:     cat,
		logger:      logger,
		maxFiles:    opts.MaxFiles,
		previewRows: opts.PreviewRows,
	}
}

// Standardize reads the header and preview rows of every repository and maps the header onto
// the catalog. A file that cannot be read yields a result carrying the failure in its errors;
// only too many files or a cancelled context fail the whole call
func (s *StandardizationService) Standardize(ctx context.Context, repos ...domain.HeaderRepository) ([]domain.FileResult, error) {
	if len(repos) > s.maxFiles {
		return nil, fmt.Errorf("%w: got %d, maximum is %d", ErrTooManyFiles, len(repos), s.maxFiles)
	}

	results := make([]domain.FileResult, 0, len(repos))
	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("standardizing files: %w", err)
		}

		result, err := s.standardizeFile(repo)
		if err != nil {
			s.logger.Warn("failed to process file",
				zap.String("file", repo.Name()),
				zap.Error(err),
			)
			results = append(results, failedResult(repo.Name(), err))
			continue
		}

		s.logger.Info("standardized header",
			zap.String("file", result.FileName),
			zap.Int("columns", len(result.Header)),
			zap.Int("mapped", len(result.Outcome.Mapping)),
			zap.Int("warnings", len(result.Outcome.Warnings)),
			zap.Int("errors", len(result.Outcome.Errors)),
			zap.String("required_coverage", result.RequiredCoverage.StringFixed(2)),
		)
		results = append(results, result)
	}

	return results, nil
}

func (s *StandardizationService) standardizeFile(repo domain.HeaderRepository) (domain.FileResult, error) {
	header, err := repo.ReadHeader()
	if err != nil {
		return domain.FileResult{}, err
	}

	rows, err := repo.ReadPreview(s.previewRows)
	if err != nil {
		return domain.FileResult{}, err
	}

	outcome := s.matcher.StandardizeHeader(header)

	var columns []string
	for _, name := range s.catalog.Names() {
		if outcome.IsMapped(name) {
			columns = append(columns, name)
		}
	}
	indexes := repository.ColumnIndexes(header, outcome)

	return domain.FileResult{
		FileName:            repo.Name(),
		Header:              header,
		Rows:                rows,
		Outcome:             outcome,
		StandardizedColumns: columns,
		StandardizedRows:    repository.ProjectRows(rows, indexes, columns),
		RequiredCoverage:    s.requiredCoverage(outcome),
	}, nil
}

// requiredCoverage returns mapped required columns / required columns, rounded to 2 places
func (s *StandardizationService) requiredCoverage(outcome domain.MappingOutcome) decimal.Decimal {
	required := s.catalog.Required()
	if len(required) == 0 {
		return decimal.NewFromInt(1)
	}

	mapped := 0
	for _, name := range required {
		if outcome.IsMapped(name) {
			mapped++
		}
	}

	return decimal.NewFromInt(int64(mapped)).
		DivRound(decimal.NewFromInt(int64(len(required))), 2)
}

func failedResult(name string, err error) domain.FileResult {
	return domain.FileResult{
		FileName: name,
		Header:   []string{},
		Rows:     [][]string{},
		Outcome: domain.MappingOutcome{
			Mapping:  map[string]domain.MappedColumn{},
			Warnings: []string{},
			Errors:   []string{fmt.Sprintf("Failed to process file: %v", err)},
		},
		StandardizedColumns: []string{},
		StandardizedRows:    [][]string{},
		RequiredCoverage:    decimal.Zero,
	}
}
