package main

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/gwas-standardizer/internal/config"
	"go.uber.org/zap"
)

type fileOutput struct {
	FileName      string     `json:"fileName"`
	Header        []string   `json:"header"`
	Rows          [][]string `json:"rows"`
	ColumnMapping map[string]struct {
		MappedFrom string `json:"mapped_from"`
		Score      int    `json:"score"`
	} `json:"column_mapping"`
	Warnings         []string `json:"warnings"`
	Errors           []string `json:"errors"`
	RequiredCoverage string   `json:"required_coverage"`
}

func TestRun_WritesJSONReport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "study.tsv")
	content := "MarkerName\tChromosome\tPosition\tEffect_Allele\tOther_Allele\tEAF\tBeta\tSE\tP-value\tN\textra_col\n" +
		"rs1\t1\t100\tA\tG\t0.1\t0.5\t0.01\t1e-8\t1000\tx\n"
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))

	cfg := config.Default()
	cfg.Files = []string{input}
	cfg.Strategy = "aliases"
	cfg.Delimiter = "tab"
	cfg.OutputFile = filepath.Join(dir, "report")

	require.NoError(t, run(context.Background(), cfg, zap.NewNop()))

	data, err := os.ReadFile(filepath.Join(dir, "report.json"))
	require.NoError(t, err)

	var out []fileOutput
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 1)

	assert.Equal(t, "study.tsv", out[0].FileName)
	assert.Empty(t, out[0].Errors)
	assert.Equal(t, []string{"Unmapped columns: extra_col"}, out[0].Warnings)
	assert.Equal(t, "MarkerName", out[0].ColumnMapping["VARIANT_ID"].MappedFrom)
	assert.Equal(t, 100, out[0].ColumnMapping["P_VALUE"].Score)
	assert.Equal(t, "1.00", out[0].RequiredCoverage)
}

func TestRun_GzipInputAndPreviewRows(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "study.tsv.gz")
	f, err := os.Create(input)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("CHR\tBP\n1\t100\n2\t200\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	readReport := func(previewRows int) fileOutput {
		cfg := config.Default()
		cfg.Files = []string{input}
		cfg.Delimiter = "tab"
		cfg.PreviewRows = previewRows
		cfg.OutputFile = filepath.Join(dir, "out.json")
		require.NoError(t, run(context.Background(), cfg, zap.NewNop()))

		data, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		var out []fileOutput
		require.NoError(t, json.Unmarshal(data, &out))
		require.Len(t, out, 1)
		return out[0]
	}

	out := readReport(6)
	assert.Equal(t, "study.tsv.gz", out.FileName)
	assert.Equal(t, []string{"CHR", "BP"}, out.Header)
	assert.Equal(t, [][]string{{"1", "100"}, {"2", "200"}}, out.Rows)
	assert.Equal(t, "CHR", out.ColumnMapping["CHR"].MappedFrom)

	// -preview 0 reads no rows
	out = readReport(0)
	assert.Empty(t, out.Rows)
	assert.Equal(t, []string{"CHR", "BP"}, out.Header)
}

func TestRun_CustomCatalog(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(input, []byte("snp,position\nrs1,100\n"), 0o644))

	schema := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schema, []byte("columns:\n  - name: SNP\n    required: true\n  - name: POSITION\n    required: true\n    type: integer\n"), 0o644))

	cfg := config.Default()
	cfg.Files = []string{input}
	cfg.CatalogPath = schema
	cfg.OutputFile = filepath.Join(dir, "out.json")

	require.NoError(t, run(context.Background(), cfg, zap.NewNop()))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var out []fileOutput
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "snp", out[0].ColumnMapping["SNP"].MappedFrom)
	assert.Equal(t, "position", out[0].ColumnMapping["POSITION"].MappedFrom)
	assert.Empty(t, out[0].Warnings)
}

func TestRun_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Files = []string{"a.csv"}
	cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, run(context.Background(), cfg, zap.NewNop()))

	cfg = config.Default()
	cfg.Files = []string{"a.csv", "b.csv", "c.csv", "d.csv"}
	assert.Error(t, run(context.Background(), cfg, zap.NewNop()))
}
