package render

import (
	"database/sql"
)

// RowsCursor adapts *sql.Rows to Cursor.
type RowsCursor struct {
	rows    *sql.Rows
	dbTypes []string
	dest    []interface{}
}

func NewRowsCursor(rows *sql.Rows) *RowsCursor {
	return &RowsCursor{rows: rows}
}

func (c *RowsCursor) Columns() ([]string, error) {
	cols, err := c.rows.Columns()
	if err != nil {
		return nil, err
	}
	c.dbTypes = make([]string, len(cols))
	if types, err := c.rows.ColumnTypes(); err == nil {
		for i, ct := range types {
			if i < len(c.dbTypes) && ct != nil {
				c.dbTypes[i] = ct.DatabaseTypeName()
			}
		}
	}
	c.dest = make([]interface{}, len(cols))
	return cols, nil
}

func (c *RowsCursor) Next() bool {
	return c.rows.Next()
}

func (c *RowsCursor) Values() ([]string, error) {
	if c.dest == nil {
		if _, err := c.Columns(); err != nil {
			return nil, err
		}
	}
	ptrs := make([]interface{}, len(c.dest))
	for i := range c.dest {
		c.dest[i] = nil
		ptrs[i] = &c.dest[i]
	}
	if err := c.rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	out := make([]string, len(c.dest))
	for i, v := range c.dest {
		out[i] = FormatValue(v, c.dbTypes[i])
	}
	return out, nil
}

func (c *RowsCursor) Err() error {
	return c.rows.Err()
}
