package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tirasundara/gwas-standardizer/internal/matcher"
	"github.com/tirasundara/gwas-standardizer/pkg/fileutil"
)

// Config captures the runtime configuration of the standardize command
type Config struct {
	Files       []string
	CatalogPath string // Empty means the built-in GWAS catalog
	Strategy    string
	Threshold   int
	Delimiter   string
	PreviewRows int
	MaxFiles    int
	Format      string
	OutputFile  string
	Pretty      bool
}

// Default returns the configuration used when no flags are given
func Default() Config {
	return Config{
		Strategy:    matcher.StrategyNameOnly,
		Threshold:   matcher.DefaultThreshold,
		Delimiter:   "comma",
		PreviewRows: 6,
		MaxFiles:    3,
		Format:      "json",
		Pretty:      true,
	}
}

// SplitFiles parses a comma-separated list of paths, dropping empty entries
func SplitFiles(list string) []string {
	var files []string
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		files = append(files, f)
	}
	return files
}

// Validate checks the configuration, reporting every problem at once
func (c Config) Validate() error {
	var errs []error

	if len(c.Files) == 0 {
		errs = append(errs, errors.New("at least one input file is required"))
	}
	if c.Threshold < 0 || c.Threshold > 100 {
		errs = append(errs, fmt.Errorf("threshold must be between 0 and 100, got %d", c.Threshold))
	}
	if c.PreviewRows < 0 {
		errs = append(errs, fmt.Errorf("preview rows must not be negative, got %d", c.PreviewRows))
	}
	if c.MaxFiles <= 0 {
		errs = append(errs, fmt.Errorf("max files must be positive, got %d", c.MaxFiles))
	}
	if _, err := matcher.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := fileutil.ParseDelimiter(c.Delimiter); err != nil {
		errs = append(errs, err)
	}
	if c.Format != "json" {
		errs = append(errs, fmt.Errorf("unsupported output format: %s", c.Format))
	}

	return errors.Join(errs...)
}
