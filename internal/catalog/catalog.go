// Package catalog holds the ordered canonical schema that input headers are standardized toward.
// The order of the columns is the resolution priority used by the matcher.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tirasundara/gwas-standardizer/internal/domain"
)

var (
	ErrEmptyCatalog    = errors.New("catalog has no columns")
	ErrEmptyColumnName = errors.New("canonical column name is empty")
	ErrDuplicateColumn = errors.New("duplicate canonical column")
)

// Catalog is an immutable, ordered list of canonical columns. Safe for concurrent use
type Catalog struct {
	columns []domain.CanonicalColumn
	index   map[string]int
}

// New validates and builds a Catalog. The given columns are copied
func New(columns ...domain.CanonicalColumn) (*Catalog, error) {
	if len(columns) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		columns: make([]domain.CanonicalColumn, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		name := strings.TrimSpace(col.Name)
		if name == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyColumnName)
		}
		if _, exists := c.index[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
		}

		if col.ExpectedType == "" {
			col.ExpectedType = domain.TypeString
		}
		col.Name = name
		col.Aliases = append([]string(nil), col.Aliases...)

		c.index[name] = len(c.columns)
		c.columns = append(c.columns, col)
	}

	return c, nil
}

// MustNew is like New but panics on an invalid catalog
func MustNew(columns ...domain.CanonicalColumn) *Catalog {
	c, err := New(columns...)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Len returns the number of canonical columns
func (c *Catalog) Len() int {
	return len(c.columns)
}

// Columns returns a copy of the canonical columns in priority order
func (c *Catalog) Columns() []domain.CanonicalColumn {
	out := make([]domain.CanonicalColumn, len(c.columns))
	for i, col := range c.columns {
		col.Aliases = append([]string(nil), col.Aliases...)
		out[i] = col
	}
	return out
}

// Names returns the canonical column names in priority order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.columns))
	for i, col := range c.columns {
		names[i] = col.Name
	}
	return names
}

// Required returns the names of the required columns in priority order
func (c *Catalog) Required() []string {
	var names []string
	for _, col := range c.columns {
		if col.Required {
			names = append(names, col.Name)
		}
	}
	return names
}

// Lookup finds a canonical column by its exact name
func (c *Catalog) Lookup(name string) (domain.CanonicalColumn, bool) {
	i, ok := c.index[name]
	if !ok {
		return domain.CanonicalColumn{}, false
	}
	col := c.columns[i]
	col.Aliases = append([]string(nil), col.Aliases...)
	return col, true
}
