package matcher

import (
	"fmt"
	"strings"

	"github.com/tirasundara/gwas-standardizer/internal/catalog"
	"github.com/tirasundara/gwas-standardizer/internal/domain"
)

// DefaultThreshold is the minimum score a candidate needs to be accepted
const DefaultThreshold = 80

// HeaderMatcher implements the domain.HeaderMatcher interface.
// It resolves canonical columns greedily in catalog order, each claiming the best scoring
// input column that no earlier canonical column has claimed.
type HeaderMatcher struct {
	catalog   *catalog.Catalog
	scorer    domain.Scorer
	strategy  CandidateStrategy
	threshold int
}

// Option configures a HeaderMatcher
type Option func(*HeaderMatcher)

// WithScorer replaces the default TokenSortRatio scorer
func WithScorer(s domain.Scorer) Option {
	return func(m *HeaderMatcher) {
		if s != nil {
			m.scorer = s
		}
	}
}

// WithStrategy replaces the default NameOnlyStrategy
func WithStrategy(s CandidateStrategy) Option {
	return func(m *HeaderMatcher) {
		if s != nil {
			m.strategy = s
		}
	}
}

// WithThreshold sets the minimum accepted score
func WithThreshold(threshold int) Option {
	return func(m *HeaderMatcher) {
		m.threshold = threshold
	}
}

// New creates a new HeaderMatcher for the given catalog. A nil catalog means catalog.Default()
func New(cat *catalog.Catalog, opts ...Option) *HeaderMatcher {
	if cat == nil {
		cat = catalog.Default()
	}

	m := &HeaderMatcher{
		catalog:   cat,
		scorer:    NewTokenSortRatio(),
		strategy:  NewNameOnlyStrategy(),
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

var defaultMatcher = New(catalog.Default())

// StandardizeHeader maps header onto the default catalog with the default settings
func StandardizeHeader(header []string) domain.MappingOutcome {
	return defaultMatcher.StandardizeHeader(header)
}

// Catalog returns the catalog the matcher resolves against
func (m *HeaderMatcher) Catalog() *catalog.Catalog {
	return m.catalog
}

// StandardizeHeader implements the domain.HeaderMatcher interface. It never fails:
// problems with the header are reported in the outcome's Errors and Warnings
func (m *HeaderMatcher) StandardizeHeader(header []string) domain.MappingOutcome {
	outcome := domain.MappingOutcome{
		Mapping:  make(map[string]domain.MappedColumn),
		Warnings: make([]string, 0),
		Errors:   make([]string, 0),
	}

	claimed := make(map[string]bool)
	exhausted := false

	for _, column := range m.catalog.Columns() {
		if !exhausted {
			remaining := unclaimed(header, claimed)

			// Nothing left to claim, no later column can be mapped
			if len(remaining) == 0 {
				exhausted = true
			} else if candidate, score, found := m.bestCandidate(column, remaining); found {
				outcome.Mapping[column.Name] = domain.MappedColumn{
					InputColumn: candidate,
					Score:       score,
				}
				claimed[candidate] = true
				continue
			}
		}

		if column.Required {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Missing required column: %s", column.Name))
		}
	}

	if unmapped := unclaimed(header, claimed); len(unmapped) > 0 {
		outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("Unmapped columns: %s", strings.Join(unmapped, ", ")))
	}

	return outcome
}

// bestCandidate returns the highest scoring candidate. On ties the earliest one wins
func (m *HeaderMatcher) bestCandidate(column domain.CanonicalColumn, candidates []string) (string, int, bool) {
	bestIdx, bestScore := -1, -1
	for i, candidate := range candidates {
		score := m.strategy.Score(m.scorer, column, candidate)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	if bestIdx < 0 || bestScore < m.threshold {
		return "", 0, false
	}
	return candidates[bestIdx], bestScore, true
}

// unclaimed returns the header columns not yet claimed, preserving header order and duplicates
func unclaimed(header []string, claimed map[string]bool) []string {
	out := make([]string, 0, len(header))
	for _, col := range header {
		if !claimed[col] {
			out = append(out, col)
		}
	}
	return out
}
