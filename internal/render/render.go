// Package render prints tabular query results the way psql's unaligned
// mode does with a tab field separator.
package render

import (
	"bufio"
	"io"
	"strings"
)

// Cursor walks a tabular result one row at a time.
type Cursor interface {
	Columns() ([]string, error)
	Next() bool
	// Values returns the current row already stringified.
	Values() ([]string, error)
	Err() error
}

// Table writes the column header on the first row and then every row,
// tab separated. An empty result prints nothing. It returns the row count.
func Table(w io.Writer, c Cursor) (int, error) {
	cols, err := c.Columns()
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	count := 0
	for c.Next() {
		row, err := c.Values()
		if err != nil {
			bw.Flush()
			return count, err
		}
		if count == 0 {
			if err := writeLine(bw, cols); err != nil {
				return count, err
			}
		}
		if err := writeLine(bw, row); err != nil {
			return count, err
		}
		count++
	}
	if err := c.Err(); err != nil {
		bw.Flush()
		return count, err
	}
	return count, bw.Flush()
}

// Collect materializes every row.
func Collect(c Cursor) ([][]string, error) {
	var rows [][]string
	for c.Next() {
		row, err := c.Values()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Count drains the cursor without stringifying values.
func Count(c interface {
	Next() bool
	Err() error
}) (int, error) {
	n := 0
	for c.Next() {
		n++
	}
	return n, c.Err()
}

func writeLine(w *bufio.Writer, fields []string) error {
	if _, err := w.WriteString(strings.Join(fields, "\t")); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
