package render

// SliceCursor serves an in-memory result.
type SliceCursor struct {
	cols []string
	rows [][]string
	pos  int
}

func NewSliceCursor(cols []string, rows [][]string) *SliceCursor {
	return &SliceCursor{cols: cols, rows: rows}
}

func (c *SliceCursor) Columns() ([]string, error) { return c.cols, nil }

func (c *SliceCursor) Next() bool {
	if c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *SliceCursor) Values() ([]string, error) {
	row := c.rows[c.pos-1]
	out := make([]string, len(row))
	copy(out, row)
	return out, nil
}

func (c *SliceCursor) Err() error { return nil }
