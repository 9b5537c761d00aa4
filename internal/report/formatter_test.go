package report_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/gwas-standardizer/internal/domain"
	"github.com/tirasundara/gwas-standardizer/internal/report"
)

func TestJSONFormatter(t *testing.T) {
	results := []domain.FileResult{
		{
			FileName: "study.csv",
			Header:   []string{"chrom", "notes"},
			Rows:     [][]string{{"1", "x"}},
			Outcome: domain.MappingOutcome{
				Mapping:  map[string]domain.MappedColumn{"CHR": {InputColumn: "chrom", Score: 100}},
				Warnings: []string{"Unmapped columns: notes"},
				Errors:   []string{"Missing required column: BP"},
			},
			StandardizedColumns: []string{"CHR"},
			StandardizedRows:    [][]string{{"1"}},
			RequiredCoverage:    decimal.NewFromInt(1).DivRound(decimal.NewFromInt(3), 2),
		},
		{FileName: "empty.csv"},
	}

	out, err := report.NewJSONFormatter(false).Format(results)
	require.NoError(t, err)

	expected := `[
	  {
	    "fileName": "study.csv",
	    "header": ["chrom", "notes"],
	    "rows": [["1", "x"]],
	    "column_mapping": {"CHR": {"mapped_from": "chrom", "score": 100}},
	    "warnings": ["Unmapped columns: notes"],
	    "errors": ["Missing required column: BP"],
	    "standardized_columns": ["CHR"],
	    "standardized_rows": [["1"]],
	    "required_coverage": "0.33"
	  },
	  {
	    "fileName": "empty.csv",
	    "header": [],
	    "rows": [],
	    "column_mapping": {},
	    "warnings": [],
	    "errors": [],
	    "standardized_columns": [],
	    "standardized_rows": [],
	    "required_coverage": "0.00"
	  }
	]`
	assert.JSONEq(t, expected, string(out))
}

func TestJSONFormatter_PrettyPrint(t *testing.T) {
	f := report.NewJSONFormatter(true)
	assert.Equal(t, "json", f.FileExtension())

	out, err := f.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))

	out, err = f.Format([]domain.FileResult{{FileName: "a.csv"}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n  {\n    \"fileName\": \"a.csv\"")

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "a.csv", decoded[0]["fileName"])
}
