package domain

import "fmt"

// ColumnType is the semantic type of a canonical column. It is informational only
type ColumnType string

// Column types
const (
	TypeString  ColumnType = "string"
	TypeInteger ColumnType = "integer"
	TypeFloat   ColumnType = "float"
)

// ParseColumnType converts a textual type tag into a ColumnType
func ParseColumnType(s string) (ColumnType, error) {
	switch t := ColumnType(s); t {
	case TypeString, TypeInteger, TypeFloat:
		return t, nil
	case "":
		return TypeString, nil
	default:
		return "", fmt.Errorf("unknown column type %q", s)
	}
}

// CanonicalColumn represents one field of the target schema
type CanonicalColumn struct {
	Name         string
	Required     bool
	ExpectedType ColumnType
	Aliases      []string // Known real-world spellings of this column
}
