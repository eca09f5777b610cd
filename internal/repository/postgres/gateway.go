package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jwalitptl/clinic-cli/internal/model"
	"github.com/jwalitptl/clinic-cli/internal/render"
	apperrors "github.com/jwalitptl/clinic-cli/pkg/errors"
)

// currval before nextval in the same session
const objectNotInPrerequisiteState = "55000"

var errClosed = errors.New("database connection is closed")

func (r *gateway) ExecuteUpdate(ctx context.Context, stmt model.Statement) (err error) {
	defer r.observe("execute_update", stmt, time.Now(), &err)

	if r.closed {
		return apperrors.Statement("execute update", errClosed)
	}
	if _, err := r.db.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
		return apperrors.Statement("execute update", err)
	}
	return nil
}

func (r *gateway) ExecuteQueryAndPrint(ctx context.Context, stmt model.Statement, w io.Writer) (count int, err error) {
	defer r.observe("query_print", stmt, time.Now(), &err)

	rows, err := r.query(ctx, stmt)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count, err = render.Table(w, render.NewRowsCursor(rows.Rows))
	r.metrics.AddRows(count)
	if err != nil {
		return count, apperrors.Statement("read query result", err)
	}
	return count, nil
}

func (r *gateway) ExecuteQueryAndCollect(ctx context.Context, stmt model.Statement) (result [][]string, err error) {
	defer r.observe("query_collect", stmt, time.Now(), &err)

	rows, err := r.query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result, err = render.Collect(render.NewRowsCursor(rows.Rows))
	if err != nil {
		return nil, apperrors.Statement("read query result", err)
	}
	r.metrics.AddRows(len(result))
	return result, nil
}

func (r *gateway) ExecuteQueryCount(ctx context.Context, stmt model.Statement) (count int, err error) {
	defer r.observe("query_count", stmt, time.Now(), &err)

	rows, err := r.query(ctx, stmt)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count, err = render.Count(rows)
	if err != nil {
		return count, apperrors.Statement("read query result", err)
	}
	r.metrics.AddRows(count)
	return count, nil
}

func (r *gateway) CurrentSequenceValue(ctx context.Context, sequence string) (value int, err error) {
	stmt := model.NewStatement(`select currval($1)`, sequence)
	defer r.observe("current_sequence_value", stmt, time.Now(), &err)

	if r.closed {
		return -1, apperrors.Statement("read sequence", errClosed)
	}

	var current sql.NullInt64
	err = r.db.GetContext(ctx, &current, stmt.SQL, stmt.Args...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return -1, nil
	case isSQLState(err, objectNotInPrerequisiteState):
		return -1, nil
	case err != nil:
		return -1, apperrors.Statement("read sequence", err)
	case !current.Valid:
		return -1, nil
	}
	return int(current.Int64), nil
}

func (r *gateway) InsertIfExists(ctx context.Context, guard, insert model.Statement) (inserted bool, err error) {
	defer r.observe("insert_if_exists", insert, time.Now(), &err)

	if r.closed {
		return false, apperrors.Statement("execute guarded insert", errClosed)
	}

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		rows, err := tx.QueryxContext(ctx, guard.SQL, guard.Args...)
		if err != nil {
			return err
		}
		found := rows.Next()
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()
		if !found {
			return nil
		}

		if _, err := tx.ExecContext(ctx, insert.SQL, insert.Args...); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		return false, apperrors.Statement("execute guarded insert", err)
	}
	return inserted, nil
}

// Close releases the connection. It is safe to call more than once and
// never reports a failure.
func (r *gateway) Close() error {
	if r.closed || r.db == nil {
		return nil
	}
	r.closed = true
	if err := r.db.Close(); err != nil {
		r.log.Debug("ignoring error while closing database", "error", err.Error())
	}
	return nil
}

func (r *gateway) query(ctx context.Context, stmt model.Statement) (*sqlx.Rows, error) {
	if r.closed {
		return nil, apperrors.Statement("execute query", errClosed)
	}
	rows, err := r.db.QueryxContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, apperrors.Statement("execute query", err)
	}
	return rows, nil
}

func (r *gateway) observe(op string, stmt model.Statement, start time.Time, errp *error) {
	r.metrics.Observe(op, start, *errp)
	if *errp != nil {
		r.log.Debug("statement failed", "operation", op, "sql", stmt.SQL, "error", (*errp).Error())
		return
	}
	r.log.Debug("statement executed", "operation", op, "sql", stmt.SQL, "args", len(stmt.Args), "elapsed", time.Since(start).String())
}

func isSQLState(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}
