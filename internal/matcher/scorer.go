package matcher

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// indelOptions makes a substitution as expensive as a deletion plus an insertion,
// so the levenshtein ratio equals 2*LCS / (len(a)+len(b))
var indelOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 2,
	Matches: levenshtein.IdenticalRunes,
}

var asciiOnly = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// TokenSortRatio scores two strings after normalizing them and sorting their tokens,
// so "p_value" and "VALUE-P" score 100
type TokenSortRatio struct{}

// NewTokenSortRatio creates the default header scorer
func NewTokenSortRatio() TokenSortRatio {
	return TokenSortRatio{}
}

// Score implements the domain.Scorer interface
func (TokenSortRatio) Score(a, b string) int {
	return ratio(sortTokens(normalize(a)), sortTokens(normalize(b)))
}

// Ratio scores two strings without token sorting. Both are still normalized
func Ratio(a, b string) int {
	return ratio(normalize(a), normalize(b))
}

func ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	r := levenshtein.RatioForStrings([]rune(a), []rune(b), indelOptions)
	return int(math.RoundToEven(r * 100))
}

// normalize drops non-ASCII runes, turns everything that is not a letter or digit into a space,
// lowercases and trims
func normalize(s string) string {
	s, _, err := transform.String(asciiOnly, s)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
