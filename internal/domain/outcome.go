package domain

// MappedColumn records which input column a canonical column was mapped from
type MappedColumn struct {
	InputColumn string
	Score       int
}

// MappingOutcome contains the result of standardizing one input header
type MappingOutcome struct {
	Mapping  map[string]MappedColumn // Keyed by canonical column name
	Warnings []string
	Errors   []string
}

// IsMapped reports whether the canonical column was mapped
func (o MappingOutcome) IsMapped(canonical string) bool {
	_, ok := o.Mapping[canonical]
	return ok
}

// ClaimedBy returns the canonical column an input column was claimed by, if any
func (o MappingOutcome) ClaimedBy(input string) (string, bool) {
	for canonical, mc := range o.Mapping {
		if mc.InputColumn == input {
			return canonical, true
		}
	}
	return "", false
}
