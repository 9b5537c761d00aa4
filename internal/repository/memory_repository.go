package repository

// MemoryRepository implements the HeaderRepository interface for a header that is already in memory
type MemoryRepository struct {
	FileName string
	Header   []string
	Rows     [][]string
}

// NewMemoryRepository creates a new MemoryRepository
func NewMemoryRepository(name string, header []string, rows ...[]string) *MemoryRepository {
	return &MemoryRepository{
		FileName: name,
		Header:   header,
		Rows:     rows,
	}
}

func (r *MemoryRepository) Name() string {
	return r.FileName
}

func (r *MemoryRepository) ReadHeader() ([]string, error) {
	return append([]string(nil), r.Header...), nil
}

func (r *MemoryRepository) ReadPreview(n int) ([][]string, error) {
	if n > len(r.Rows) {
		n = len(r.Rows)
	}
	if n < 0 {
		n = 0
	}

	rows := make([][]string, n)
	for i := range rows {
		rows[i] = append([]string(nil), r.Rows[i]...)
	}
	return rows, nil
}
