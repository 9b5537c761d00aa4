package fileutil

import (
	"archive/zip"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const utf8BOM = "\uFEFF"

var (
	// ErrEmptyFile is returned when a file has no header row
	ErrEmptyFile = errors.New("file has no header row")
	// ErrEmptyArchive is returned when a zip archive has no entries
	ErrEmptyArchive = errors.New("zip archive is empty")
)

// CSVReader provides a helper/utility to read delimited text file(s)
type CSVReader struct {
	FilePath  string
	Delimiter rune
}

// NewCSVReader returns a CSVReader instance for a specified file. A zero delimiter means comma
func NewCSVReader(fp string, delimiter rune) *CSVReader {
	if delimiter == 0 {
		delimiter = ','
	}

	return &CSVReader{
		FilePath:  fp,
		Delimiter: delimiter,
	}
}

// ReadHeader reads ONLY the header of the specified file
func (r *CSVReader) ReadHeader() ([]string, error) {
	f, err := open(r.FilePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readHeader(r.newReader(f))
}

// ReadPreview reads the header and then at most n data rows
func (r *CSVReader) ReadPreview(n int) ([][]string, error) {
	rows := make([][]string, 0, n)
	err := r.ReadAndProcessByRow(func(row []string) error {
		if len(rows) >= n {
			return errStop
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}

	return rows, nil
}

var errStop = errors.New("stop reading")

// ReadAndProcessByRow reads and processes a file row by row, allows for streaming large file(s)
func (r *CSVReader) ReadAndProcessByRow(processorFn func([]string) error) error {
	f, err := open(r.FilePath)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := r.newReader(f)

	// Skip header
	if _, err = readHeader(reader); err != nil {
		return err
	}

	// read and process row by row
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break // end of file, stop
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		if err = processorFn(row); err != nil {
			return err
		}
	}

	return nil
}

// EntryName returns the name the content of fp is known by: the first entry of a .zip archive,
// otherwise the base name of fp
func EntryName(fp string) (string, error) {
	if !isZip(fp) {
		return filepath.Base(fp), nil
	}

	zr, err := zip.OpenReader(fp)
	if err != nil {
		return "", fmt.Errorf("opening a zip archive: %w", err)
	}
	defer zr.Close()

	if len(zr.File) == 0 {
		return "", ErrEmptyArchive
	}
	return zr.File[0].Name, nil
}

func isZip(fp string) bool {
	return strings.HasSuffix(strings.ToLower(fp), ".zip")
}

func isGzip(fp string) bool {
	return strings.HasSuffix(strings.ToLower(fp), ".gz")
}

// multiCloser closes the decompressing reader before the file underneath it
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// open opens fp for reading. Gzip files are decompressed and only the first entry of a zip
// archive is read
func open(fp string) (io.ReadCloser, error) {
	if isZip(fp) {
		zr, err := zip.OpenReader(fp)
		if err != nil {
			return nil, fmt.Errorf("opening a zip archive: %w", err)
		}
		if len(zr.File) == 0 {
			zr.Close()
			return nil, ErrEmptyArchive
		}

		entry, err := zr.File[0].Open()
		if err != nil {
			zr.Close()
			return nil, fmt.Errorf("opening zip entry %s: %w", zr.File[0].Name, err)
		}
		return &multiCloser{Reader: entry, closers: []io.Closer{entry, zr}}, nil
	}

	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("opening a csv file: %w", err)
	}
	if !isGzip(fp) {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening a gzip file: %w", err)
	}
	return &multiCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
}

func (r *CSVReader) newReader(src io.Reader) *csv.Reader {
	reader := csv.NewReader(src)
	reader.Comma = r.Delimiter
	reader.FieldsPerRecord = -1 // Ragged rows are allowed
	reader.LazyQuotes = true
	return reader
}

func readHeader(reader *csv.Reader) ([]string, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimSpace(strings.TrimPrefix(header[0], utf8BOM))
	}

	return header, nil
}

// ParseDelimiter converts a delimiter name or single character into a rune
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "", ",", "comma", "csv":
		return ',', nil
	case "\t", `\t`, "tab", "tsv":
		return '\t', nil
	case ";", "semicolon":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	case " ", "space":
		return ' ', nil
	}

	runes := []rune(s)
	if len(runes) != 1 || runes[0] == '\r' || runes[0] == '\n' || runes[0] == '"' {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return runes[0], nil
}
