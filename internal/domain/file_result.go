package domain

import "github.com/shopspring/decimal"

// FileResult is the standardization result of a single input file
type FileResult struct {
	FileName string
	Header   []string
	Rows     [][]string // Bounded preview of the data rows
	Outcome  MappingOutcome

	// StandardizedColumns lists the mapped canonical columns in catalog order,
	// StandardizedRows holds the preview rows projected onto them
	StandardizedColumns []string
	StandardizedRows    [][]string

	// RequiredCoverage is the share of required canonical columns that were mapped
	RequiredCoverage decimal.Decimal
}
