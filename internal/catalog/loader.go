package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tirasundara/gwas-standardizer/internal/domain"
	"gopkg.in/yaml.v3"
)

type catalogDocument struct {
	Columns []columnDocument `yaml:"columns"`
}

type columnDocument struct {
	Name     string   `yaml:"name"`
	Required bool     `yaml:"required"`
	Type     string   `yaml:"type"`
	Aliases  []string `yaml:"aliases"`
}

// LoadYAML decodes a catalog document of the form
//
//	columns:
//	  - name: CHR
//	    required: true
//	    type: string
//	    aliases: [chrom, chromosome]
func LoadYAML(r io.Reader) (*Catalog, error) {
	var doc catalogDocument

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	columns := make([]domain.CanonicalColumn, 0, len(doc.Columns))
	for _, cd := range doc.Columns {
		colType, err := domain.ParseColumnType(cd.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", cd.Name, err)
		}

		columns = append(columns, domain.CanonicalColumn{
			Name:         cd.Name,
			Required:     cd.Required,
			ExpectedType: colType,
			Aliases:      cd.Aliases,
		})
	}

	return New(columns...)
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}
