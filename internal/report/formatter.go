package report

import (
	"encoding/json"

	"github.com/tirasundara/gwas-standardizer/internal/domain"
)

// OutputFormatter defines the interface for formatting standardization results
type OutputFormatter interface {
	Format(results []domain.FileResult) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats standardization results as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

type mappedColumnJSON struct {
	MappedFrom string `json:"mapped_from"`
	Score      int    `json:"score"`
}

type fileResultJSON struct {
	FileName            string                      `json:"fileName"`
	Header              []string                    `json:"header"`
	Rows                [][]string                  `json:"rows"`
	ColumnMapping       map[string]mappedColumnJSON `json:"column_mapping"`
	Warnings            []string                    `json:"warnings"`
	Errors              []string                    `json:"errors"`
	StandardizedColumns []string                    `json:"standardized_columns"`
	StandardizedRows    [][]string                  `json:"standardized_rows"`
	RequiredCoverage    string                      `json:"required_coverage"`
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(results []domain.FileResult) ([]byte, error) {
	out := make([]fileResultJSON, 0, len(results))
	for _, r := range results {
		out = append(out, toJSON(r))
	}

	if f.PrettyPrint {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

func toJSON(r domain.FileResult) fileResultJSON {
	mapping := make(map[string]mappedColumnJSON, len(r.Outcome.Mapping))
	for canonical, mc := range r.Outcome.Mapping {
		mapping[canonical] = mappedColumnJSON{MappedFrom: mc.InputColumn, Score: mc.Score}
	}

	return fileResultJSON{
		FileName:            r.FileName,
		Header:              nonNil(r.Header),
		Rows:                nonNilRows(r.Rows),
		ColumnMapping:       mapping,
		Warnings:            nonNil(r.Outcome.Warnings),
		Errors:              nonNil(r.Outcome.Errors),
		StandardizedColumns: nonNil(r.StandardizedColumns),
		StandardizedRows:    nonNilRows(r.StandardizedRows),
		RequiredCoverage:    r.RequiredCoverage.StringFixed(2),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilRows(rows [][]string) [][]string {
	if rows == nil {
		return [][]string{}
	}
	return rows
}
