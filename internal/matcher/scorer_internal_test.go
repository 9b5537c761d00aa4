package matcher

import "testing"

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"CHR":             "chr",
		"  #Chr-Name__ ":  "chr name",
		"p.value":         "p value",
		"Pösition":        "psition",
		"b_a  c":          "b a  c",
		"":                "",
		"__":              "",
		"base_pair_LOC99": "base pair loc99",
	}

	for in, want := range tests {
		if got := normalize(in); got != want {
			t.Errorf("normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSortTokens(t *testing.T) {
	tests := map[string]string{
		"value p":  "p value",
		"b a  c":   "a b c",
		"id":       "id",
		"":         "",
		"z y x 10": "10 x y z",
	}

	for in, want := range tests {
		if got := sortTokens(in); got != want {
			t.Errorf("sortTokens(%q) = %q, want %q", in, got, want)
		}
	}
}
