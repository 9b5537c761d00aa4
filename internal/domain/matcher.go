package domain

// Scorer computes a similarity score between two strings, in [0, 100]
type Scorer interface {
	Score(a, b string) int
}

// ScorerFunc adapts an ordinary function to the Scorer interface
type ScorerFunc func(a, b string) int

// Score implements the Scorer interface
func (f ScorerFunc) Score(a, b string) int {
	return f(a, b)
}

// HeaderMatcher defines the interface for mapping an input header onto the canonical schema
type HeaderMatcher interface {
	StandardizeHeader(header []string) MappingOutcome
}
