package repository

import (
	"fmt"
	"path/filepath"

	"github.com/tirasundara/gwas-standardizer/pkg/fileutil"
)

// CSVFileRepository implements the HeaderRepository interface for delimited text files
type CSVFileRepository struct {
	FilePath  string
	FileName  string
	Delimiter rune
}

// NewCSVFileRepository creates a new CSVFileRepository. A zero delimiter means comma.
// Files ending in .gz are decompressed; for .zip archives the first entry is read and
// reported as the file name
func NewCSVFileRepository(filePath string, delimiter rune) *CSVFileRepository {
	if delimiter == 0 {
		delimiter = ',' // Default delimiter
	}

	name, err := fileutil.EntryName(filePath)
	if err != nil {
		name = filepath.Base(filePath) // the read reports the error
	}

	return &CSVFileRepository{
		FilePath:  filePath,
		FileName:  name,
		Delimiter: delimiter,
	}
}

func (r *CSVFileRepository) Name() string {
	return r.FileName
}

func (r *CSVFileRepository) ReadHeader() ([]string, error) {
	header, err := fileutil.NewCSVReader(r.FilePath, r.Delimiter).ReadHeader()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", r.FileName, err)
	}
	return header, nil
}

func (r *CSVFileRepository) ReadPreview(n int) ([][]string, error) {
	if n <= 0 {
		return [][]string{}, nil
	}

	rows, err := fileutil.NewCSVReader(r.FilePath, r.Delimiter).ReadPreview(n)
	if err != nil {
		return nil, fmt.Errorf("reading preview rows of %s: %w", r.FileName, err)
	}
	return rows, nil
}
