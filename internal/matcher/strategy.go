package matcher

import (
	"fmt"

	"github.com/tirasundara/gwas-standardizer/internal/domain"
)

// CandidateStrategy decides which strings of a canonical column are scored against an input column
type CandidateStrategy interface {
	Score(scorer domain.Scorer, column domain.CanonicalColumn, input string) int
	Name() string
}

// Strategy names accepted by ParseStrategy
const (
	StrategyNameOnly       = "name"
	StrategyNameAndAliases = "aliases"
)

// NameOnlyStrategy scores only the canonical column name. Aliases are ignored
type NameOnlyStrategy struct{}

// NewNameOnlyStrategy creates a new NameOnlyStrategy
func NewNameOnlyStrategy() *NameOnlyStrategy {
	return &NameOnlyStrategy{}
}

// Score implements the CandidateStrategy interface
func (s *NameOnlyStrategy) Score(scorer domain.Scorer, column domain.CanonicalColumn, input string) int {
	return scorer.Score(column.Name, input)
}

func (s *NameOnlyStrategy) Name() string {
	return StrategyNameOnly
}

// NameAndAliasesStrategy scores the canonical name and every alias, keeping the best score
type NameAndAliasesStrategy struct{}

// NewNameAndAliasesStrategy creates a new NameAndAliasesStrategy
func NewNameAndAliasesStrategy() *NameAndAliasesStrategy {
	return &NameAndAliasesStrategy{}
}

// Score implements the CandidateStrategy interface
func (s *NameAndAliasesStrategy) Score(scorer domain.Scorer, column domain.CanonicalColumn, input string) int {
	best := scorer.Score(column.Name, input)
	for _, alias := range column.Aliases {
		if best == 100 {
			break
		}
		if score := scorer.Score(alias, input); score > best {
			best = score
		}
	}
	return best
}

func (s *NameAndAliasesStrategy) Name() string {
	return StrategyNameAndAliases
}

// ParseStrategy returns the strategy registered under name
func ParseStrategy(name string) (CandidateStrategy, error) {
	switch name {
	case StrategyNameOnly, "":
		return NewNameOnlyStrategy(), nil
	case StrategyNameAndAliases:
		return NewNameAndAliasesStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown match strategy %q", name)
	}
}
