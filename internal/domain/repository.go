package domain

// HeaderRepository defines the interface for accessing the header and data rows of one input file
type HeaderRepository interface {
	// Name returns the file name reported back to the caller
	Name() string

	// ReadHeader reads ONLY the header row
	ReadHeader() ([]string, error)

	// ReadPreview reads at most n data rows following the header
	ReadPreview(n int) ([][]string, error)
}
