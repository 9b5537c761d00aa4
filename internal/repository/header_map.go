package repository

import "github.com/tirasundara/gwas-standardizer/internal/domain"

// ColumnIndexes maps each mapped canonical column to the index of its input column in header.
// The first occurrence wins when the input column is duplicated
func ColumnIndexes(header []string, outcome domain.MappingOutcome) map[string]int {
	columnMap := make(map[string]int, len(outcome.Mapping))

	for i, field := range header {
		canonical, ok := outcome.ClaimedBy(field)
		if !ok {
			continue
		}
		if _, seen := columnMap[canonical]; !seen {
			columnMap[canonical] = i
		}
	}

	return columnMap
}

// ProjectRows reorders rows into the given canonical column order.
// Unmapped columns and cells missing from short rows are left empty
func ProjectRows(rows [][]string, columnMap map[string]int, order []string) [][]string {
	projected := make([][]string, 0, len(rows))

	for _, row := range rows {
		out := make([]string, len(order))
		for j, canonical := range order {
			idx, ok := columnMap[canonical]
			if !ok || idx >= len(row) {
				continue
			}
			out[j] = row[idx]
		}
		projected = append(projected, out)
	}

	return projected
}
